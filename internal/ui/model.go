package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workshoplist/internal/config"
	"workshoplist/internal/listing"
	"workshoplist/internal/pagination"
	"workshoplist/internal/search"
	"workshoplist/internal/ui/handlers"
	"workshoplist/internal/ui/input"
	inputtypes "workshoplist/internal/ui/input/types"
	"workshoplist/internal/ui/state"
	"workshoplist/internal/ui/viewmodels"
	"workshoplist/internal/ui/views"
)

// tickInterval is the redraw rate while transitions run
const tickInterval = 80 * time.Millisecond

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState

	// UI-specific state not in AppState
	width      int
	height     int
	keys       keyMap
	searchKeys searchKeyMap

	// Shared collection and its two controllers
	list    *listing.List
	pager   *pagination.Paginator
	filter  search.Filter
	pending *search.Pass // latest pass handed to the filter

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pagerOps     *PagerOps

	initialQuery string

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The paginator is expected to be
// initialized already; initialQuery, when set, runs as the first filter pass.
func NewModel(cfg *config.Config, list *listing.List, pager *pagination.Paginator,
	filter search.Filter, initialQuery string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState()

	m := &Model{
		config:       cfg,
		state:        appState,
		keys:         newKeyMap(),
		searchKeys:   newSearchKeyMap(),
		list:         list,
		pager:        pager,
		filter:       filter,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(),
		pagerOps:     NewPagerOps(nil),
		initialQuery: initialQuery,
	}
	m.viewModel = viewmodels.NewViewModel(appState, cfg, list, pager)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.initialQuery == "" {
		return nil
	}
	m.state.SearchQuery = m.initialQuery
	return m.startFilter(m.initialQuery)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state.InPagerMode {
			return m, nil
		}

		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	case EventMsg, tickMsg, filterDoneMsg, pagerMsg, pauseRenderingMsg, resumeRenderingMsg:
		return m.handleNonKeyboardMsg(msg)

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetInputMode(mode)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	if mode == inputtypes.ModeSearch {
		m.viewModel.SetHelp(m.searchKeys)
	} else {
		m.viewModel.SetHelp(m.keys)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		items := len(m.pager.State().Items)
		switch a.Direction {
		case "up":
			m.state.SelectedIndex--
		case "down":
			m.state.SelectedIndex++
		case "top":
			m.state.SelectedIndex = 0
		case "bottom":
			m.state.SelectedIndex = items - 1
		}
		m.state.ClampSelection(items)

	case inputtypes.PageKeyAction:
		if m.pager.Update(a.Key) {
			m.state.SelectedIndex = 0
		}

	case inputtypes.PageAction:
		moved := false
		switch a.Target {
		case "first":
			moved = m.pager.FirstPage()
		case "last":
			moved = m.pager.LastPage()
		case "goto":
			moved = m.pager.GoTo(a.Page)
		}
		if moved {
			m.state.SelectedIndex = 0
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.SearchQuery = a.Text
			return m.startFilter(a.Text)
		}

	case inputtypes.UpdateTextAction:
		if m.config.FilterOnType {
			return m.startFilter(a.Text)
		}

	case inputtypes.CancelTextAction:
		// Typing may have filtered ahead of the committed keyword
		if m.config.FilterOnType && m.activeQuery() != m.state.SearchQuery {
			return m.startFilter(m.state.SearchQuery)
		}

	case inputtypes.ClearSearchAction:
		if m.state.SearchQuery == "" && m.activeQuery() == "" {
			return nil
		}
		m.state.SearchQuery = ""
		return m.startFilter("")

	case inputtypes.OpenItemAction:
		items := m.pager.State().Items
		if m.state.SelectedIndex < 0 || m.state.SelectedIndex >= len(items) {
			return nil
		}
		content := m.helpRenderer.RenderWorkshopDetails(items[m.state.SelectedIndex].Workshop)
		return m.showInPager(content)

	case inputtypes.ToggleHelpAction:
		opts := m.pager.Options()
		content := m.helpRenderer.RenderHelpContent(opts.Previous, opts.Next, opts.PerPage)
		return m.showInPager(content)

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.state.InPagerMode {
			return m, nil
		}
		if m.state.Filtering || m.list.Animating() {
			return m, tick()
		}
		return m, nil

	case filterDoneMsg:
		m.handleFilterDone(msg)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
			m.state.SetError(fmt.Sprintf("Pager error: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		if m.state.Filtering {
			return m, tick()
		}
		return m, nil
	}

	return m, nil
}

// startFilter hands keyword to the filter and waits for the pass in the
// background
func (m *Model) startFilter(keyword string) tea.Cmd {
	if m.filter == nil {
		return nil
	}

	pass := m.filter.OnQueryChange(keyword)
	m.pending = pass
	m.state.Filtering = true

	return tea.Batch(waitForPass(pass), tick())
}

// activeQuery is the keyword of the latest pass, which runs ahead of the
// committed keyword while typing filters
func (m *Model) activeQuery() string {
	if m.filter == nil {
		return ""
	}
	return m.filter.Query()
}

func (m *Model) handleFilterDone(msg filterDoneMsg) {
	// Only the latest pass may settle the UI
	if msg.pass != m.pending {
		return
	}
	m.state.Filtering = false

	if msg.err != nil {
		if errors.Is(msg.err, search.ErrSuperseded) {
			return
		}
		m.state.SetError(fmt.Sprintf("Filter failed: %v", msg.err))
		return
	}

	m.state.SelectedIndex = 0

	total := msg.result.Visible + msg.result.Hidden
	if msg.result.Keyword == "" {
		m.state.SetStatus(fmt.Sprintf("Showing all %d workshops", total))
	} else {
		m.state.SetStatus(fmt.Sprintf("%d of %d workshops match %q", msg.result.Visible, total, msg.result.Keyword))
	}
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(content string) tea.Cmd {
	if m.program == nil {
		m.state.SetError("Pager unavailable")
		return nil
	}

	program, ops := m.program, m.pagerOps
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := ops.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

func (m *Model) inputContext() inputtypes.Context {
	return modelContext{state: m.state, page: m.pager.State()}
}

// waitForPass returns a command that blocks until pass is done
func waitForPass(pass *search.Pass) tea.Cmd {
	return func() tea.Msg {
		<-pass.Done()
		result, err := pass.Result()
		return filterDoneMsg{pass: pass, result: result, err: err}
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// modelContext exposes model state to the input modes
type modelContext struct {
	state *state.AppState
	page  pagination.State
}

func (c modelContext) CurrentIndex() int { return c.state.SelectedIndex }
func (c modelContext) ItemsOnPage() int  { return len(c.page.Items) }
func (c modelContext) Page() int         { return c.page.Page }
func (c modelContext) TotalPages() int   { return c.page.TotalPages }
func (c modelContext) Query() string     { return c.state.SearchQuery }
