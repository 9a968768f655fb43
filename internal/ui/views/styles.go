package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Item          lipgloss.Style
	Date          lipgloss.Style
	Tag           lipgloss.Style
	Showing       lipgloss.Style
	Hiding        lipgloss.Style
	SelectionBg   lipgloss.Style
	NavLabel      lipgloss.Style
	NavDisabled   lipgloss.Style
	NavPage       lipgloss.Style
	NavCurrent    lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Date:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Tag:           lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Showing:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Italic(true),
		Hiding:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		NavLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		NavDisabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		NavPage:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		NavCurrent:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("226")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
