package views

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"workshoplist/internal/listing"
)

const dateLayout = "2006-01-02"

// WorkshopRenderer handles rendering of workshop items
type WorkshopRenderer struct {
	styles *Styles
}

// NewWorkshopRenderer creates a new workshop renderer
func NewWorkshopRenderer(styles *Styles) *WorkshopRenderer {
	return &WorkshopRenderer{
		styles: styles,
	}
}

// RenderWorkshop renders one line of the list pane. width is the space
// available for the whole line; zero disables truncation.
func (r *WorkshopRenderer) RenderWorkshop(item listing.Item, isSelected bool, searchQuery string, width int) string {
	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	date := ""
	if !item.Workshop.Date.IsZero() {
		date = item.Workshop.Date.Format(dateLayout)
	}

	title := item.Workshop.Label()
	if width > 0 {
		room := width - runewidth.StringWidth(cursor)
		if date != "" {
			room -= len(date) + 2
		}
		title = Truncate(title, room)
	}

	baseStyle := r.itemStyle(item)
	if isSelected {
		baseStyle = baseStyle.Inherit(r.styles.SelectionBg)
	}

	var parts []string
	parts = append(parts, baseStyle.Render(cursor))
	if searchQuery != "" && item.Transition == listing.TransitionNone {
		parts = append(parts, r.highlightMatch(title, searchQuery, baseStyle.Foreground(lipgloss.Color("226")), baseStyle))
	} else {
		parts = append(parts, baseStyle.Render(title))
	}
	if date != "" {
		parts = append(parts, "  ", r.styles.Date.Render(date))
	}

	return strings.Join(parts, "")
}

func (r *WorkshopRenderer) itemStyle(item listing.Item) lipgloss.Style {
	switch item.Transition {
	case listing.TransitionHiding:
		return r.styles.Hiding
	case listing.TransitionShowing:
		return r.styles.Showing
	default:
		return r.styles.Item
	}
}

// highlightMatch highlights the first case-insensitive occurrence of query
func (r *WorkshopRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	start, end := matchBounds(text, query)
	if start == -1 {
		return normalStyle.Render(text)
	}

	before := text[:start]
	match := text[start:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// matchBounds returns the byte range of the first occurrence of query in
// text, comparing one lowercased rune at a time so the offsets stay valid
// for text even when lowercasing changes byte lengths. It returns -1, -1
// when there is no match.
func matchBounds(text, query string) (int, int) {
	needle := []rune(query)
	if len(needle) == 0 {
		return -1, -1
	}
	for i, r := range needle {
		needle[i] = unicode.ToLower(r)
	}

	type pos struct {
		r      rune
		offset int
	}
	var runes []pos
	for offset, r := range text {
		runes = append(runes, pos{unicode.ToLower(r), offset})
	}

	for i := 0; i+len(needle) <= len(runes); i++ {
		matched := true
		for j, r := range needle {
			if runes[i+j].r != r {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		end := len(text)
		if k := i + len(needle); k < len(runes) {
			end = runes[k].offset
		}
		return runes[i].offset, end
	}
	return -1, -1
}

// Truncate shortens s to at most width terminal cells, marking the cut
// with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
