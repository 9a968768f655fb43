package views

import (
	"strconv"
	"strings"

	"workshoplist/internal/pagination"
)

// maxNavPages bounds how many page numbers the navigation bar lists
const maxNavPages = 9

// Ellipsis stands for a run of pages left out of the navigation bar
const Ellipsis = -1

// PageWindow returns the zero based pages to list for the navigation bar.
// The first and last pages are always present, the pages around current
// fill the rest and gaps are marked with Ellipsis.
func PageWindow(current, total, max int) []int {
	if total <= 0 {
		return nil
	}
	if max < 5 {
		max = 5
	}
	if total <= max {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i
		}
		return pages
	}

	// Room for first, last and two ellipses
	inner := max - 4
	start := current - inner/2
	if start < 1 {
		start = 1
	}
	end := start + inner
	if end > total-1 {
		end = total - 1
		start = end - inner
	}

	// A side without a gap spends its ellipsis slot on one more page
	leftGap, rightGap := start > 1, end < total-1
	if !leftGap {
		end++
		rightGap = end < total-1
	} else if !rightGap {
		start--
		leftGap = start > 1
	}

	pages := []int{0}
	if leftGap {
		pages = append(pages, Ellipsis)
	}
	for p := start; p < end && p < total-1; p++ {
		pages = append(pages, p)
	}
	if rightGap {
		pages = append(pages, Ellipsis)
	}
	return append(pages, total-1)
}

// NavRenderer draws the Previous / page numbers / Next bar
type NavRenderer struct {
	styles *Styles
}

// NewNavRenderer creates a new navigation renderer
func NewNavRenderer(styles *Styles) *NavRenderer {
	return &NavRenderer{styles: styles}
}

// Render returns the styled navigation bar for state
func (n *NavRenderer) Render(state pagination.State) string {
	prevStyle, nextStyle := n.styles.NavLabel, n.styles.NavLabel
	if state.OnFirstPage() {
		prevStyle = n.styles.NavDisabled
	}
	if state.OnLastPage() {
		nextStyle = n.styles.NavDisabled
	}

	parts := []string{prevStyle.Render(state.Previous)}
	for _, p := range PageWindow(state.Page, state.TotalPages, maxNavPages) {
		switch {
		case p == Ellipsis:
			parts = append(parts, n.styles.NavPage.Render("…"))
		case p == state.Page:
			parts = append(parts, n.styles.NavCurrent.Render(strconv.Itoa(p+1)))
		default:
			parts = append(parts, n.styles.NavPage.Render(strconv.Itoa(p+1)))
		}
	}
	parts = append(parts, nextStyle.Render(state.Next))

	return strings.Join(parts, " ")
}

// PlainNav renders the navigation bar without styling; the active page is
// wrapped in brackets
func PlainNav(state pagination.State) string {
	parts := []string{state.Previous}
	for _, p := range PageWindow(state.Page, state.TotalPages, maxNavPages) {
		switch {
		case p == Ellipsis:
			parts = append(parts, "…")
		case p == state.Page:
			parts = append(parts, "["+strconv.Itoa(p+1)+"]")
		default:
			parts = append(parts, strconv.Itoa(p+1))
		}
	}
	parts = append(parts, state.Next)
	return strings.Join(parts, " ")
}
