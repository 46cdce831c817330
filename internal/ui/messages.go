package ui

import (
	"swipe/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerClosedMsg is sent when the panel pager exits
type pagerClosedMsg struct {
	panel string
	err   error
}
