package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCandidatesUpdated   EventType = "CandidatesUpdated"
	EventSearchFailed        EventType = "SearchFailed"
	EventForecastUpdated     EventType = "ForecastUpdated"
	EventForecastFailed      EventType = "ForecastFailed"
	EventRefreshStateChanged EventType = "RefreshStateChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CandidatesUpdatedEvent is emitted when the candidate list was replaced or cleared
type CandidatesUpdatedEvent struct {
	Query      string
	Candidates []LocationCandidate
}

func (e CandidatesUpdatedEvent) Type() EventType { return EventCandidatesUpdated }

// SearchFailedEvent is emitted when a geocoding lookup fails; the list is left as is
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ForecastUpdatedEvent is emitted when a viewer replaced its snapshot
type ForecastUpdatedEvent struct {
	Location SelectedLocation
	Snapshot *ForecastSnapshot
}

func (e ForecastUpdatedEvent) Type() EventType { return EventForecastUpdated }

// ForecastFailedEvent is emitted when a forecast load fails; the stale snapshot stays
type ForecastFailedEvent struct {
	Location SelectedLocation
	Err      error
}

func (e ForecastFailedEvent) Type() EventType { return EventForecastFailed }

// RefreshStateChangedEvent is emitted when a viewer's refreshing flag flips
type RefreshStateChangedEvent struct {
	Location   SelectedLocation
	Refreshing bool
}

func (e RefreshStateChangedEvent) Type() EventType { return EventRefreshStateChanged }
