package recipe

import (
	"time"

	"github.com/google/uuid"
)

// CreatedEvent is raised when a recipe is created.
type CreatedEvent struct {
	RecipeID  uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	CreatedAt time.Time
}

// EventName returns the event name.
func (e CreatedEvent) EventName() string { return "recipe.created" }

// OccurredAt returns when the event occurred.
func (e CreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// DeletedEvent is raised when a recipe is soft deleted.
type DeletedEvent struct {
	RecipeID  uuid.UUID
	DeletedAt time.Time
}

// EventName returns the event name.
func (e DeletedEvent) EventName() string { return "recipe.deleted" }

// OccurredAt returns when the event occurred.
func (e DeletedEvent) OccurredAt() time.Time { return e.DeletedAt }
