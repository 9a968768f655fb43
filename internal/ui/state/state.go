package state

// AppState contains the UI state that is not owned by the list or the
// paginator
type AppState struct {
	// Selection state
	SelectedIndex int // cursor within the active page

	// Search state
	SearchQuery string // committed keyword
	Filtering   bool   // a filter pass is running

	// UI state
	StatusMessage string
	StatusError   bool
	InPagerMode   bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus replaces the status line
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusError = false
}

// SetError shows msg as an error in the status line
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusError = true
}

// ClampSelection keeps the cursor within a page of n items
func (s *AppState) ClampSelection(n int) {
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
