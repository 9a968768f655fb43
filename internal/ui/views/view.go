package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"workshoplist/internal/pagination"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Page          pagination.State
	SelectedIndex int // cursor within the active page
	Catalog       int // number of workshops in the catalog
	Query         string
	Filtering     bool
	InputMode     string
	InputPrompt   string
	TextInput     string
	StatusMessage string
	StatusError   bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	workshopRender *WorkshopRenderer
	navRender      *NavRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		workshopRender: NewWorkshopRenderer(styles),
		navRender:      NewNavRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Prompt.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	// Main content
	if state.Page.Empty() {
		content.WriteString(r.renderEmpty(state))
	} else {
		content.WriteString(r.renderPage(state))
		content.WriteString("\n\n")
		content.WriteString(r.navRender.Render(state.Page))
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(RangeText(state.Page)))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	helpText := state.HelpView
	if helpText == "" {
		helpText = "Press ? for help"
	}
	helpText = r.styles.Help.Render(helpText)

	// Push the help footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the title with the filter and progress
// indicators right aligned
func (r *Renderer) renderTitleLine(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "workshops"
	}
	logo := r.styles.Title.Render(title)

	var indicators []string
	if state.Filtering {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%s Filtering", spinner[frame])))
	}
	if state.Query != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.Query)))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

func (r *Renderer) renderPage(state ViewState) string {
	width := state.Width - 4
	if state.Width <= 0 {
		width = 0
	}

	lines := make([]string, 0, len(state.Page.Items))
	for i, item := range state.Page.Items {
		lines = append(lines, r.workshopRender.RenderWorkshop(item, i == state.SelectedIndex, state.Query, width))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderEmpty(state ViewState) string {
	switch {
	case state.Catalog == 0:
		return r.styles.Dim.Render("No workshops in the catalog.")
	case state.Query != "":
		return r.styles.Dim.Render(fmt.Sprintf("No workshops match %q. Press ctrl+l to clear the search.", state.Query))
	default:
		return r.styles.Dim.Render("No workshops to show.")
	}
}

// RangeText describes the active page, e.g. "Showing 9-16 of 20"
func RangeText(page pagination.State) string {
	if page.Empty() {
		return "Showing 0 of 0"
	}
	return fmt.Sprintf("Showing %d-%d of %d", page.Start+1, page.End, page.Total)
}
