package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded     EventType = "CatalogLoaded"
	EventFilterStarted     EventType = "FilterStarted"
	EventFilterApplied     EventType = "FilterApplied"
	EventFilterSuperseded  EventType = "FilterSuperseded"
	EventPaginationRebuilt EventType = "PaginationRebuilt"
	EventPageChanged       EventType = "PageChanged"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the workshop catalog has been read
type CatalogLoadedEvent struct {
	Source string
	Count  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// FilterStartedEvent is emitted when a search keyword change starts a filter pass
type FilterStartedEvent struct {
	Keyword    string
	Generation uint64
}

func (e FilterStartedEvent) Type() EventType { return EventFilterStarted }

// FilterAppliedEvent is emitted after every item of a pass has settled and
// the list has been paginated again
type FilterAppliedEvent struct {
	Summary    FilterSummary
	Generation uint64
	Pages      int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// FilterSupersededEvent is emitted when a newer keyword cancelled a pass
type FilterSupersededEvent struct {
	Keyword    string
	Generation uint64
}

func (e FilterSupersededEvent) Type() EventType { return EventFilterSuperseded }

// PaginationRebuiltEvent is emitted each time the paginator is initialized
type PaginationRebuiltEvent struct {
	Container  string
	Items      int
	TotalPages int
}

func (e PaginationRebuiltEvent) Type() EventType { return EventPaginationRebuilt }

// PageChangedEvent is emitted when navigation moves to another page
type PageChangedEvent struct {
	Container string
	From      int
	To        int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
