package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"workshoplist/internal/config"
	"workshoplist/internal/listing"
	"workshoplist/internal/pagination"
	inputtypes "workshoplist/internal/ui/input/types"
	"workshoplist/internal/ui/state"
	"workshoplist/internal/ui/views"
)

// searchPrompt is shown in front of the search input
const searchPrompt = "Search: "

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	list      *listing.List
	pager     *pagination.Paginator
	width     int
	height    int
	help      help.Model
	keys      help.KeyMap
	mode      inputtypes.Mode
	textInput textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, list *listing.List, pager *pagination.Paginator) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		list:   list,
		pager:  pager,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the key map rendered in the footer
func (vm *ViewModel) SetHelp(keys help.KeyMap) {
	vm.keys = keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode inputtypes.Mode) {
	vm.mode = mode
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Title:         vm.config.Container,
		Page:          vm.pager.State(),
		SelectedIndex: vm.state.SelectedIndex,
		Catalog:       vm.list.Len(),
		Query:         vm.state.SearchQuery,
		Filtering:     vm.state.Filtering,
		StatusMessage: vm.state.StatusMessage,
		StatusError:   vm.state.StatusError,
	}

	if vm.mode == inputtypes.ModeSearch {
		vs.InputMode = vm.mode.String()
		vs.InputPrompt = searchPrompt
		vs.TextInput = vm.textInput.View()
	}

	if vm.keys != nil {
		vs.HelpView = vm.help.View(vm.keys)
	}

	return vs
}
