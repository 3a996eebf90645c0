package kirana

import (
	"fmt"
	"strconv"
	"strings"
)

// Done is the token an operator types to abort an input flow.
const Done = "done"

// IsDone reports whether s is the abort token, ignoring case and surrounding spaces.
func IsDone(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), Done)
}

// ParseQuantity parses a base-10 integer typed by the operator.
//
// Only the syntax is checked here, sign rules are enforced by the Inventory
// operations themselves.
func ParseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number: %w", s, ErrInvalidQuantity)
	}
	return q, nil
}
