package pagination

import (
	"log"
	"sync"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"workshoplist/internal/eventbus"
	"workshoplist/internal/listing"
)

// Options configures the paginated container
type Options struct {
	ContainerID string // name of the list container being decorated
	PerPage     int
	Previous    string // label of the previous-page control
	Next        string // label of the next-page control
}

// DefaultOptions returns eight items per page with Previous/Next labels
func DefaultOptions() Options {
	return Options{
		ContainerID: "workshoplist",
		PerPage:     8,
		Previous:    "Previous",
		Next:        "Next",
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.PerPage <= 0 {
		o.PerPage = def.PerPage
	}
	if o.Previous == "" {
		o.Previous = def.Previous
	}
	if o.Next == "" {
		o.Next = def.Next
	}
	if o.ContainerID == "" {
		o.ContainerID = def.ContainerID
	}
	return o
}

// State is a read-only snapshot of the paginated view
type State struct {
	Container  string
	Page       int // zero based
	TotalPages int
	PerPage    int
	Total      int // number of paginated (visible) items
	Start      int // position of the first item of the page within the visible set
	End        int // exclusive
	Items      []listing.Item
	Previous   string
	Next       string
}

// Empty reports whether there is nothing to paginate
func (s State) Empty() bool {
	return s.TotalPages == 0
}

// OnFirstPage reports whether the previous control is inert
func (s State) OnFirstPage() bool {
	return s.Page == 0
}

// OnLastPage reports whether the next control is inert
func (s State) OnLastPage() bool {
	return s.TotalPages == 0 || s.Page >= s.TotalPages-1
}

// Paginator splits the visible items of a list into fixed-size pages and
// keeps the hidden marker of every visible item in sync with the active page
type Paginator struct {
	mu      sync.RWMutex
	list    *listing.List
	opts    Options
	model   paginator.Model
	visible []int
	bus     eventbus.EventBus
}

// New creates a paginator over list. Init must be called before use.
func New(list *listing.List, opts Options, bus eventbus.EventBus) *Paginator {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	opts = opts.normalized()
	return &Paginator{
		list:  list,
		opts:  opts,
		model: newModel(opts.PerPage, 0),
		bus:   bus,
	}
}

func newModel(perPage, items int) paginator.Model {
	m := paginator.New(paginator.WithPerPage(perPage))
	m.Type = paginator.Arabic
	m.TotalPages = TotalPages(items, perPage)
	return m
}

// TotalPages returns ceil(items/perPage); zero items give zero pages
func TotalPages(items, perPage int) int {
	if items <= 0 || perPage <= 0 {
		return 0
	}
	return (items + perPage - 1) / perPage
}

// Init rebuilds pagination from the current state of the list: visible
// items are paginated in list order, filtered items are not counted and the
// first page becomes active. Previous state is discarded, so calling Init
// repeatedly is safe. Without a list it does nothing.
func (p *Paginator) Init() {
	if p == nil || p.list == nil {
		return
	}

	p.mu.Lock()
	p.visible = p.list.VisibleIndices()
	p.model = newModel(p.opts.PerPage, len(p.visible))
	p.markLocked()
	total := p.model.TotalPages
	count := len(p.visible)
	p.mu.Unlock()

	log.Printf("Paginator %s rebuilt: %d items, %d pages", p.opts.ContainerID, count, total)
	p.bus.Publish(eventbus.PaginationRebuiltEvent{
		Container:  p.opts.ContainerID,
		Items:      count,
		TotalPages: total,
	})
}

// NextPage moves to the following page
func (p *Paginator) NextPage() bool {
	return p.move(func(m *paginator.Model) { m.NextPage() })
}

// PrevPage moves to the preceding page
func (p *Paginator) PrevPage() bool {
	return p.move(func(m *paginator.Model) { m.PrevPage() })
}

// FirstPage jumps to the first page
func (p *Paginator) FirstPage() bool {
	return p.move(func(m *paginator.Model) { m.Page = 0 })
}

// LastPage jumps to the last page
func (p *Paginator) LastPage() bool {
	return p.move(func(m *paginator.Model) { m.Page = m.TotalPages - 1 })
}

// GoTo jumps to the zero based page; out of range pages are ignored
func (p *Paginator) GoTo(page int) bool {
	return p.move(func(m *paginator.Model) {
		if page >= 0 && page < m.TotalPages {
			m.Page = page
		}
	})
}

// Update feeds a key message through the paginator key map
// (left/h/pgup, right/l/pgdown). It reports whether the page changed.
func (p *Paginator) Update(msg tea.Msg) bool {
	return p.move(func(m *paginator.Model) {
		*m, _ = m.Update(msg)
	})
}

func (p *Paginator) move(fn func(*paginator.Model)) bool {
	if p == nil {
		return false
	}

	p.mu.Lock()
	if p.model.TotalPages == 0 {
		p.mu.Unlock()
		return false
	}
	from := p.model.Page
	fn(&p.model)
	if p.model.Page < 0 {
		p.model.Page = 0
	}
	if p.model.Page > p.model.TotalPages-1 {
		p.model.Page = p.model.TotalPages - 1
	}
	to := p.model.Page
	if from != to {
		p.markLocked()
	}
	p.mu.Unlock()

	if from == to {
		return false
	}
	p.bus.Publish(eventbus.PageChangedEvent{Container: p.opts.ContainerID, From: from, To: to})
	return true
}

// markLocked sets the hidden marker on every visible item off the active page
func (p *Paginator) markLocked() {
	start, end := p.boundsLocked()
	p.list.MarkPage(p.visible, start, end)
}

func (p *Paginator) boundsLocked() (int, int) {
	if p.model.TotalPages == 0 {
		return 0, 0
	}
	return p.model.GetSliceBounds(len(p.visible))
}

// TotalPages returns the page count of the last rebuild
func (p *Paginator) TotalPages() int {
	if p == nil {
		return 0
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.model.TotalPages
}

// Page returns the zero based active page
func (p *Paginator) Page() int {
	if p == nil {
		return 0
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.model.Page
}

// Options returns the effective options
func (p *Paginator) Options() Options {
	return p.opts
}

// State returns a snapshot of the active page
func (p *Paginator) State() State {
	if p == nil {
		return State{}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	start, end := p.boundsLocked()
	s := State{
		Container:  p.opts.ContainerID,
		Page:       p.model.Page,
		TotalPages: p.model.TotalPages,
		PerPage:    p.opts.PerPage,
		Total:      len(p.visible),
		Start:      start,
		End:        end,
		Previous:   p.opts.Previous,
		Next:       p.opts.Next,
	}
	// The hidden marker decides page membership
	for _, idx := range p.visible[start:end] {
		if item, ok := p.list.Item(idx); ok && item.Shown() {
			s.Items = append(s.Items, item)
		}
	}
	return s
}
