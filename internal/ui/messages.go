package ui

import (
	"nimbus/internal/domain"
	"nimbus/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// forecastLoadedMsg is returned when a Load or Refresh command settles
type forecastLoadedMsg struct {
	location domain.SelectedLocation
	refresh  bool
	err      error
}

// pagerMsg contains the result of the full-table pager
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
