// Package currency formats ruble amounts for API responses.
package currency

import (
	"math"
	"strconv"
	"strings"

	"cargotrack/internal/pkg/errs"
)

// Round2 rounds a money amount to kopecks. Applied at the API boundary so
// internal float arithmetic never leaks sub-kopeck noise to clients.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatRUB renders an amount with up to two fraction digits and a currency
// suffix, e.g. "5970 ₽" or "5970.5 ₽". Trailing zeros are dropped.
func FormatRUB(amount float64) string {
	s := strconv.FormatFloat(Round2(amount), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + " ₽"
}

// ParseRUB parses an amount produced by FormatRUB, or a bare number with at
// most two fraction digits. FormatRUB and ParseRUB round-trip.
func ParseRUB(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "₽"))
	if trimmed == "" {
		return 0, errs.NewValueIsRequiredError("amount")
	}

	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 && len(trimmed)-dot-1 > 2 {
		return 0, errs.NewValueIsInvalidError("amount")
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return amount, nil
}
