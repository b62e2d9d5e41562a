package httputil

import (
	"fmt"
	"strconv"
)

// ParseNonNegativeInt converts a query parameter into an int and rejects negative values.
func ParseNonNegativeInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer, got %q", name, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("query parameter %s must not be negative, got %d", name, n)
	}
	return n, nil
}
