package kirana

import "errors"

var (
	// ErrItemNotFound is returned when an operation references an item absent from the inventory.
	ErrItemNotFound = errors.New("item not found in stock")
	// ErrInsufficientStock is returned when a sale exceeds the quantity in stock.
	ErrInsufficientStock = errors.New("insufficient stock available")
	// ErrInvalidQuantity is returned for non-integer, non-positive quantities or negative limits.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrStorageUnavailable is returned when the inventory file cannot be read or written
	// for a reason other than its absence.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
