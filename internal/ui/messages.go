package ui

import (
	"time"

	"workshoplist/internal/eventbus"
	"workshoplist/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer while transitions run
type tickMsg time.Time

// filterDoneMsg reports a finished or superseded filter pass
type filterDoneMsg struct {
	pass   *search.Pass
	result search.Result
	err    error
}

// pauseRenderingMsg signals that an external pager took the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager returned the terminal
type resumeRenderingMsg struct{}
