package domain

import "time"

// Workshop represents one entry of the workshop list
type Workshop struct {
	ID      string    // stable slug, unique within a catalog
	Title   string    // link text shown in the list and used for matching
	URL     string    // link target
	Summary string    // short description shown in the details pager
	Tags    []string
	Date    time.Time // zero if unknown
}

// Label returns the text shown for the workshop in the list
func (w Workshop) Label() string {
	if w.Title != "" {
		return w.Title
	}
	return w.ID
}

// FilterSummary describes the outcome of a filter pass
type FilterSummary struct {
	Keyword string
	Visible int
	Hidden  int
}
