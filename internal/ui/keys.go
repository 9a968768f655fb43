package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings shown in the footer. Dispatch happens in the
// input modes; these bindings only document it.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Jump   key.Binding
	Open   key.Binding
	Search key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "top of page")),
		Bottom: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "bottom of page")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next")),
		First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to page")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear search")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Search, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Open},
		{k.Prev, k.Next, k.First, k.Last, k.Jump},
		{k.Search, k.Clear, k.Help, k.Quit},
	}
}

// searchKeyMap is shown while the search input has focus
type searchKeyMap struct {
	Commit key.Binding
	Cancel key.Binding
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
