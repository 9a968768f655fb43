package types

import tea "github.com/charmbracelet/bubbletea"

// Cursor movement within the active page
type NavigateAction struct {
	Direction string // "up", "down", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction moves between pages
type PageAction struct {
	Target string // "first", "last" or "goto"
	Page   int    // zero based, used with "goto"
}

func (a PageAction) Type() string { return "page" }

// PageKeyAction hands a key to the paginator key map (previous/next page)
type PageKeyAction struct {
	Key tea.KeyMsg
}

func (a PageKeyAction) Type() string { return "page_key" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction commits the search input; this is the change event
type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// OpenItemAction shows the selected workshop in the pager
type OpenItemAction struct{}

func (a OpenItemAction) Type() string { return "open_item" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
