package shopping

import (
	"time"

	"github.com/google/uuid"
)

// ListCreatedEvent is raised when a shopping list is created.
type ListCreatedEvent struct {
	ListID    uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// EventName returns the event name.
func (e ListCreatedEvent) EventName() string { return "shopping.list_created" }

// OccurredAt returns when the event occurred.
func (e ListCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ItemsGeneratedEvent is raised when aggregation output merges into a list.
type ItemsGeneratedEvent struct {
	ListID      uuid.UUID
	OwnerID     uuid.UUID
	Count       int
	GeneratedAt time.Time
}

// EventName returns the event name.
func (e ItemsGeneratedEvent) EventName() string { return "shopping.items_generated" }

// OccurredAt returns when the event occurred.
func (e ItemsGeneratedEvent) OccurredAt() time.Time { return e.GeneratedAt }
