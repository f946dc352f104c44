package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/dietary"
)

// DietaryService defines the use cases for preference management and
// recipe safety checks.
type DietaryService interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesDTO, error)
	UpdatePreferences(ctx context.Context, cmd UpdatePreferencesCommand) (*PreferencesDTO, error)

	// CheckRecipe evaluates a stored recipe against the user's profile.
	CheckRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*WarningsDTO, error)
	// CheckIngredients evaluates an ad-hoc ingredient list, for recipes
	// not yet saved.
	CheckIngredients(ctx context.Context, userID uuid.UUID, ingredients []string) (*WarningsDTO, error)
}

// UpdatePreferencesCommand replaces the user's dietary preference sets.
// Unknown labels are rejected, not silently dropped.
type UpdatePreferencesCommand struct {
	UserID              uuid.UUID
	DietaryRestrictions []string
	Allergies           []string
	DislikedIngredients []string
	ExpiryAlertDays     *int
}

// PreferencesDTO is the outward representation of dietary preferences.
type PreferencesDTO struct {
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"dislikedIngredients"`
	ExpiryAlertDays     int      `json:"expiryAlertDays"`
}

// WarningsDTO carries the per-ingredient warnings plus collapsed
// display lines.
type WarningsDTO struct {
	Warnings []dietary.Warning `json:"warnings"`
	Summary  []string          `json:"summary"`
}
