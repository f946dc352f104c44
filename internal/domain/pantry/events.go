package pantry

import (
	"time"

	"github.com/google/uuid"
)

// ItemAddedEvent is raised when an item enters the pantry.
type ItemAddedEvent struct {
	ItemID  uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Source  Source
	AddedAt time.Time
}

// EventName returns the event name.
func (e ItemAddedEvent) EventName() string { return "pantry.item_added" }

// OccurredAt returns when the event occurred.
func (e ItemAddedEvent) OccurredAt() time.Time { return e.AddedAt }

// ItemResolvedEvent is raised when an item is marked used or wasted.
type ItemResolvedEvent struct {
	ItemID     uuid.UUID
	OwnerID    uuid.UUID
	Outcome    Status
	ResolvedAt time.Time
}

// EventName returns the event name.
func (e ItemResolvedEvent) EventName() string { return "pantry.item_resolved" }

// OccurredAt returns when the event occurred.
func (e ItemResolvedEvent) OccurredAt() time.Time { return e.ResolvedAt }
