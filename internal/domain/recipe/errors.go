package recipe

import "errors"

// Domain errors for recipe operations.
var (
	ErrTitleRequired          = errors.New("recipe title is required")
	ErrTitleTooLong           = errors.New("recipe title must be at most 200 characters")
	ErrIngredientItemRequired = errors.New("ingredient item name is required")
	ErrEmptyInstruction       = errors.New("instruction step cannot be empty")
	ErrInvalidMealType        = errors.New("invalid meal type")
	ErrInvalidServings        = errors.New("servings must be positive")
	ErrNegativeTiming         = errors.New("prep and cook time cannot be negative")
	ErrAlreadyDeleted         = errors.New("recipe is already deleted")
	ErrNotFound               = errors.New("recipe not found")
)
