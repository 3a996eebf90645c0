package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/kirana"
)

// Sold confirms a sale.
func Sold(item string, qty int) string {
	return fmt.Sprintf("%d units of %s sold successfully.", qty, item)
}

// Added confirms a stock arrival.
func Added(item string, qty int) string {
	return fmt.Sprintf("%d units of %s added to stock.", qty, item)
}

// ThresholdSet confirms a new quantity limit.
func ThresholdSet(item string, limit int) string {
	return fmt.Sprintf("Quantity limit set for %s: %d units.", item, limit)
}

// Error turns an error into the message displayed to the shop keeper.
func Error(err error) string {
	switch {
	case errors.Is(err, kirana.ErrInsufficientStock):
		return "Error: Insufficient stock available."
	case errors.Is(err, kirana.ErrItemNotFound):
		return "Error: Item not found in stock."
	case errors.Is(err, kirana.ErrInvalidQuantity):
		return "Error: Please enter a valid quantity."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
