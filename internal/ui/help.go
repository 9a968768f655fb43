package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"workshoplist/internal/domain"
)

// errNoProgram is returned when the pager is requested before the program
// reference was set
var errNoProgram = errors.New("program not set")

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// HelpRenderer handles help and details content rendering
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dimStyle:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContent generates the long form help shown in the pager
func (r *HelpRenderer) RenderHelpContent(previous, next string, perPage int) string {
	var help strings.Builder

	line := func(keys, desc string) {
		help.WriteString(fmt.Sprintf("  %-12s %s\n", r.keyStyle.Render(keys), r.descStyle.Render(desc)))
	}

	help.WriteString(r.titleStyle.Render("Workshop List Help"))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Pages"))
	help.WriteString("\n")
	line("←/→, h/l", fmt.Sprintf("%s / %s page", previous, next))
	line("PgUp/PgDn", fmt.Sprintf("%s / %s page", previous, next))
	line("Home/End", "First / last page")
	line("g/G", "First / last page")
	line("1-9", "Jump to page")
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Workshops"))
	help.WriteString("\n")
	line("↑/↓, j/k", "Move the cursor")
	line("H/L", "Top / bottom of the page")
	line("Enter", "Show workshop details")
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Search"))
	help.WriteString("\n")
	line("/", "Edit the search keyword")
	line("Enter", "Apply the keyword")
	line("Esc", "Cancel editing")
	line("Ctrl+L", "Clear the search")
	help.WriteString(r.dimStyle.Render(fmt.Sprintf(
		"  Titles containing the keyword stay listed, ignoring case. Matches are paginated %d per page.", perPage)))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("?", "Show this help")
	help.WriteString(fmt.Sprintf("  %-12s %s", r.keyStyle.Render("q"), r.descStyle.Render("Quit")))

	return help.String()
}

// RenderWorkshopDetails generates the details page of a workshop
func (r *HelpRenderer) RenderWorkshopDetails(w domain.Workshop) string {
	var b strings.Builder

	b.WriteString(r.titleStyle.Render(w.Label()))
	b.WriteString("\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", r.keyStyle.Render(name+":"), r.descStyle.Render(value)))
	}
	field("ID", w.ID)
	field("URL", w.URL)
	if !w.Date.IsZero() {
		field("Date", w.Date.Format("2006-01-02"))
	}
	field("Tags", strings.Join(w.Tags, ", "))

	if w.Summary != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(w.Summary))
		b.WriteString("\n")
	}

	return b.String()
}

// PagerOps runs content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content using ov pager
func (p *PagerOps) Show(content string) error {
	if p == nil || p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
