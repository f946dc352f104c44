// Package shared holds domain building blocks used by every aggregate.
package shared

import "time"

// DomainEvent represents an event that has occurred in the domain
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp common to all events.
type BaseEvent struct {
	At time.Time
}

// OccurredAt returns when the event happened
func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}

// AggregateRoot is embedded by aggregate roots to collect pending events.
type AggregateRoot struct {
	events []DomainEvent
}

// AddEvent records a domain event for later dispatch
func (a *AggregateRoot) AddEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// Events returns and clears pending domain events
func (a *AggregateRoot) Events() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}
