// Package pricing holds the canonical price arithmetic shared by the cart
// and product display paths, plus parsing for the API's string-typed money
// fields.
package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// LinePrice computes the price of a cart line: (base + extra) * quantity.
// The variant extra price defaults to 0 for variant-less products, so
// callers without a variant pass 0.
func LinePrice(basePrice, extraPrice float64, quantity int) float64 {
	return (basePrice + extraPrice) * float64(quantity)
}

// ParseAmount parses a money amount as the backend serialises it: a decimal
// number carried as a JSON string (e.g. "1200.00"). An empty string is
// treated as 0, which is how an absent variant extra price arrives.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("pricing: invalid amount %q: %w", s, err)
	}
	return v, nil
}
