package pantry

import "errors"

// Domain errors for pantry operations.
var (
	ErrItemNameRequired    = errors.New("inventory item name is required")
	ErrInvalidCategory     = errors.New("invalid grocery category")
	ErrItemAlreadyResolved = errors.New("inventory item is already used or wasted")
	ErrItemNotFound        = errors.New("inventory item not found")
)
