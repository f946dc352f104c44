package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/suggestion"
)

// SuggestionService defines the use case for inventory-aware recipe
// suggestions: call the external generator with the user's pantry and
// preferences, then rank the results for presentation.
type SuggestionService interface {
	SuggestFromPantry(ctx context.Context, cmd SuggestCommand) (*suggestion.Ranked, error)

	// ListHistory returns past generation runs, newest first.
	ListHistory(ctx context.Context, ownerID uuid.UUID, limit int) ([]suggestion.LogEntry, error)
}

// SuggestCommand requests suggestions for a user's current pantry.
type SuggestCommand struct {
	OwnerID        uuid.UUID
	MaxSuggestions int
}
