package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"workshoplist/internal/ui/input/types"
)

// SearchMode edits the keyword; Enter commits it, Esc keeps the old one
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
