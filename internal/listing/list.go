// Package listing holds the workshop items shared by the paginator and the
// search controller.
//
// Items are addressed by their position, which never changes: the list is
// built once from the catalog and only the per-item flags move afterwards.
// Every method is safe for concurrent use because filter animations update
// items from their own goroutines while the UI reads snapshots.
package listing

import (
	"sync"

	"workshoplist/internal/domain"
)

// Transition describes an in-flight show or hide animation
type Transition int

const (
	TransitionNone Transition = iota
	TransitionShowing
	TransitionHiding
)

// Item is a snapshot of one list entry
type Item struct {
	Index    int
	Workshop domain.Workshop

	// Visible is the filter state; hidden items are not paginated.
	Visible bool

	// Excluded is the hidden marker: set on visible items that sit on
	// another page than the active one.
	Excluded bool

	Transition Transition
	Progress   float64 // 0..1 while Transition != TransitionNone
}

// Shown reports whether the item is on the active page. Visibility only
// flips once a transition finishes, so a hiding item is still shown.
func (i Item) Shown() bool {
	return i.Visible && !i.Excluded
}

// List is the shared collection of items
type List struct {
	mu    sync.RWMutex
	items []Item
}

// New builds a list in which every workshop starts visible
func New(workshops []domain.Workshop) *List {
	items := make([]Item, len(workshops))
	for i, w := range workshops {
		items[i] = Item{Index: i, Workshop: w, Visible: true}
	}
	return &List{items: items}
}

// Len returns the number of items
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Items returns a copy of every item in list order
func (l *List) Items() []Item {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns a copy of the item at index
func (l *List) Item(index int) (Item, bool) {
	if l == nil {
		return Item{}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.items) {
		return Item{}, false
	}
	return l.items[index], true
}

// Title returns the link text of the item at index
func (l *List) Title(index int) string {
	item, _ := l.Item(index)
	return item.Workshop.Title
}

// VisibleIndices returns the positions of all visible items in list order
func (l *List) VisibleIndices() []int {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []int
	for i := range l.items {
		if l.items[i].Visible {
			out = append(out, i)
		}
	}
	return out
}

// ClearMarker removes the hidden marker from the item
func (l *List) ClearMarker(index int) {
	l.update(index, func(it *Item) {
		it.Excluded = false
	})
}

// SetVisible changes visibility without animation
func (l *List) SetVisible(index int, visible bool) {
	l.update(index, func(it *Item) {
		it.Visible = visible
		it.Transition = TransitionNone
		it.Progress = 0
	})
}

// BeginTransition marks the start of an animation towards visible
func (l *List) BeginTransition(index int, visible bool) {
	l.update(index, func(it *Item) {
		if visible {
			it.Transition = TransitionShowing
		} else {
			it.Transition = TransitionHiding
		}
		it.Progress = 0
	})
}

// SetProgress records animation progress, clamped to [0,1]
func (l *List) SetProgress(index int, progress float64) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	l.update(index, func(it *Item) {
		if it.Transition != TransitionNone {
			it.Progress = progress
		}
	})
}

// FinishTransition settles the item in its final state
func (l *List) FinishTransition(index int, visible bool) {
	l.update(index, func(it *Item) {
		it.Visible = visible
		it.Transition = TransitionNone
		it.Progress = 0
	})
}

// Animating reports whether any item has a transition in flight
func (l *List) Animating() bool {
	if l == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.items {
		if l.items[i].Transition != TransitionNone {
			return true
		}
	}
	return false
}

// MarkPage sets the hidden marker on every visible item outside
// visible[start:end] and clears it on the items inside that window.
// Items hidden by the filter keep whatever marker they had.
func (l *List) MarkPage(visible []int, start, end int) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for pos, idx := range visible {
		if idx < 0 || idx >= len(l.items) {
			continue
		}
		l.items[idx].Excluded = pos < start || pos >= end
	}
}

func (l *List) update(index int, fn func(*Item)) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.items) {
		return
	}
	fn(&l.items[index])
}
