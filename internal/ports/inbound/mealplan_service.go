package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MealPlanService defines the use cases for calendar meal planning.
type MealPlanService interface {
	PlanMeal(ctx context.Context, cmd PlanMealCommand) (*MealPlanEntryDTO, error)
	Reschedule(ctx context.Context, cmd RescheduleCommand) (*MealPlanEntryDTO, error)
	Unplan(ctx context.Context, entryID, ownerID uuid.UUID) error

	GetEntry(ctx context.Context, entryID uuid.UUID) (*MealPlanEntryDTO, error)
	ListRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]MealPlanEntryDTO, error)
}

// PlanMealCommand schedules a recipe for a calendar day and meal slot.
type PlanMealCommand struct {
	OwnerID  uuid.UUID
	RecipeID uuid.UUID `validate:"required"`
	Date     time.Time `validate:"required"`
	MealType string    `validate:"required"`
	Servings int
	Notes    string `validate:"max=500"`
}

// RescheduleCommand moves an entry. Nil fields are left untouched.
type RescheduleCommand struct {
	EntryID  uuid.UUID
	OwnerID  uuid.UUID
	Date     *time.Time
	MealType *string
	Servings *int
	Notes    *string
}

// MealPlanEntryDTO is the outward representation of a planned meal.
type MealPlanEntryDTO struct {
	ID          uuid.UUID `json:"id"`
	RecipeID    uuid.UUID `json:"recipeId"`
	RecipeTitle string    `json:"recipeTitle,omitempty"`
	Date        time.Time `json:"date"`
	MealType    string    `json:"mealType"`
	Servings    int       `json:"servings"`
	Notes       string    `json:"notes,omitempty"`
}
