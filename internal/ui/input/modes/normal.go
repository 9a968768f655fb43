package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"workshoplist/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyCtrlL:
		return []types.Action{types.ClearSearchAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft, tea.KeyRight, tea.KeyPgUp, tea.KeyPgDown:
		return []types.Action{types.PageKeyAction{Key: msg}}, true

	case tea.KeyHome:
		return []types.Action{types.PageAction{Target: "first"}}, true

	case tea.KeyEnd:
		return []types.Action{types.PageAction{Target: "last"}}, true

	case tea.KeyEnter:
		if ctx.ItemsOnPage() > 0 {
			return []types.Action{types.OpenItemAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "H":
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case "L":
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case "h", "l":
		return []types.Action{types.PageKeyAction{Key: msg}}, true

	case "g":
		return []types.Action{types.PageAction{Target: "first"}}, true

	case "G":
		return []types.Action{types.PageAction{Target: "last"}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		page := int(msg.String()[0] - '1')
		if page < ctx.TotalPages() {
			return []types.Action{types.PageAction{Target: "goto", Page: page}}, true
		}
		return nil, true
	}

	return nil, false
}
