package shopping

import "errors"

// Domain errors for shopping list operations.
var (
	ErrListNameRequired = errors.New("shopping list name is required")
	ErrItemNameRequired = errors.New("shopping list item name is required")
	ErrItemNotFound     = errors.New("shopping list item not found")
	ErrInvalidCategory  = errors.New("invalid grocery category")
	ErrListNotFound     = errors.New("shopping list not found")
)
