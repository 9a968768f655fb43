package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"workshoplist/internal/eventbus"
	"workshoplist/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes domain events and returns any necessary commands.
// Filter completion is not handled here: the model waits on the pass itself
// so it can tell stale passes apart.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.SetStatus(fmt.Sprintf("Loaded %d workshops from %s", e.Count, e.Source))

	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.state.SetError(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		} else {
			h.state.SetError(fmt.Sprintf("Error: %s", e.Message))
		}
	}

	return nil
}
