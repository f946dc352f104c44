package recipe

import (
	"strings"
)

// Ingredient is one line of a recipe's ingredient list. Amount and Unit
// are free text: "1 1/2", "cloves", "to taste" are all valid and are
// never normalized here. Only consumers that sum quantities try to parse
// Amount, and they degrade gracefully when it is not numeric.
type Ingredient struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Notes  string `json:"notes,omitempty"`
}

// Validate checks the ingredient line. Only the item name is mandatory.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Item) == "" {
		return ErrIngredientItemRequired
	}
	return nil
}

// MealType represents a meal slot.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// IsValid reports whether the meal type is one of the known slots.
// The zero value is also accepted so untyped recipes stay legal.
func (m MealType) IsValid() bool {
	switch m {
	case "", MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// Status represents the lifecycle state of a recipe.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)
