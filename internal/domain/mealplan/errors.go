package mealplan

import "errors"

// Domain errors for meal plan operations.
var (
	ErrRecipeRequired  = errors.New("meal plan entry requires a recipe")
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidServings = errors.New("servings must be positive")
	ErrEntryNotFound   = errors.New("meal plan entry not found")
)
