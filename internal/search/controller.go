// Package search filters the workshop list by keyword and paginates it again
// once every item has settled.
package search

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"workshoplist/internal/domain"
	"workshoplist/internal/eventbus"
	"workshoplist/internal/listing"
)

// ErrSuperseded is returned when a newer keyword cancelled the pass
var ErrSuperseded = errors.New("filter pass superseded by a newer query")

// Repaginator rebuilds pagination from the current list state
type Repaginator interface {
	Init()
	TotalPages() int
}

// QueryListener is the single entry point the UI calls when the search
// input commits a new value
type QueryListener interface {
	OnQueryChange(keyword string) *Pass
}

// Filter is a QueryListener that also reports the keyword it last received
type Filter interface {
	QueryListener
	Query() string
}

var (
	_ QueryListener = (*Controller)(nil)
	_ Filter        = (*Controller)(nil)
)

// Result summarizes a completed pass
type Result struct {
	domain.FilterSummary
	Generation uint64
	Pages      int
}

// Pass is one filter run started by a query change
type Pass struct {
	Keyword    string
	Generation uint64

	cancel context.CancelFunc
	done   chan struct{}
	result Result
	err    error
}

// Done is closed once the pass has finished or was superseded
func (p *Pass) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the pass is finished
func (p *Pass) Wait(ctx context.Context) (Result, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Result returns the outcome; only meaningful after Done is closed
func (p *Pass) Result() (Result, error) {
	return p.result, p.err
}

// Superseded reports whether a newer query cancelled this pass
func (p *Pass) Superseded() bool {
	select {
	case <-p.done:
		return errors.Is(p.err, ErrSuperseded)
	default:
		return false
	}
}

// Controller binds a keyword to the visibility of each list item
type Controller struct {
	list     *listing.List
	pager    Repaginator
	animator Animator
	bus      eventbus.EventBus

	mu         sync.Mutex
	query      string
	generation uint64
	current    *Pass
}

// NewController wires the controller to the shared list and its paginator
func NewController(list *listing.List, pager Repaginator, animator Animator, bus eventbus.EventBus) *Controller {
	if animator == nil {
		animator = InstantAnimator{}
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Controller{
		list:     list,
		pager:    pager,
		animator: animator,
		bus:      bus,
	}
}

// OnQueryChange starts a filter pass for keyword. Any pass still running is
// cancelled first and its animations jump to their end state, so the new
// pass always starts from settled items. The returned pass finishes after
// all of its animations completed and pagination was rebuilt.
func (c *Controller) OnQueryChange(keyword string) *Pass {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev := c.current; prev != nil {
		prev.cancel()
		<-prev.done
	}

	c.generation++
	c.query = keyword

	ctx, cancel := context.WithCancel(context.Background())
	pass := &Pass{
		Keyword:    keyword,
		Generation: c.generation,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	c.current = pass

	c.bus.Publish(eventbus.FilterStartedEvent{Keyword: keyword, Generation: pass.Generation})
	go c.run(ctx, pass)

	return pass
}

// Apply runs a pass for keyword and waits for it
func (c *Controller) Apply(ctx context.Context, keyword string) (Result, error) {
	pass := c.OnQueryChange(keyword)
	return pass.Wait(ctx)
}

// Query returns the last keyword handed to the controller
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Close cancels the running pass, if any
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev := c.current; prev != nil {
		prev.cancel()
		<-prev.done
		c.current = nil
	}
}

func (c *Controller) run(ctx context.Context, pass *Pass) {
	defer close(pass.done)
	defer pass.cancel()

	summary := domain.FilterSummary{Keyword: pass.Keyword}
	var g errgroup.Group

	for _, item := range c.list.Items() {
		idx := item.Index
		show := listing.Matches(item.Workshop.Title, pass.Keyword)

		if show {
			summary.Visible++
			c.list.ClearMarker(idx)
		} else {
			summary.Hidden++
		}

		// Items already in the target state need no transition
		if item.Visible == show {
			continue
		}

		g.Go(func() error {
			return c.animate(ctx, idx, show)
		})
	}

	err := g.Wait()
	if ctx.Err() != nil {
		pass.err = ErrSuperseded
		log.Printf("Filter pass %d for %q superseded", pass.Generation, pass.Keyword)
		c.bus.Publish(eventbus.FilterSupersededEvent{Keyword: pass.Keyword, Generation: pass.Generation})
		return
	}
	if err != nil {
		log.Printf("Filter pass %d animation error: %v", pass.Generation, err)
		c.bus.Publish(eventbus.ErrorEvent{Message: "filter animation failed", Err: err})
	}

	pages := 0
	if c.pager != nil {
		c.pager.Init()
		pages = c.pager.TotalPages()
	}

	pass.result = Result{FilterSummary: summary, Generation: pass.Generation, Pages: pages}
	log.Printf("Filter pass %d for %q: %d visible, %d hidden, %d pages",
		pass.Generation, pass.Keyword, summary.Visible, summary.Hidden, pages)
	c.bus.Publish(eventbus.FilterAppliedEvent{Summary: summary, Generation: pass.Generation, Pages: pages})
}

// animate runs one transition; a cancelled transition still lands on its
// final state
func (c *Controller) animate(ctx context.Context, idx int, show bool) error {
	c.list.BeginTransition(idx, show)
	err := c.animator.Animate(ctx, func(progress float64) {
		c.list.SetProgress(idx, progress)
	})
	c.list.FinishTransition(idx, show)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
