package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

// orderNumberPattern matches "ORD-YYYYMMDD-NNNNNN".
var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{6}$`)

// OrderNumber is the human-readable order identifier shown to clients and
// managers, e.g. "ORD-20260831-004217". It embeds the creation date and a
// random six-digit suffix. Uniqueness is enforced by the database constraint
// on the orders table, not by this value object.
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber generates an order number for the given creation time.
func NewOrderNumber(createdAt time.Time) OrderNumber {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000000))

	value := fmt.Sprintf("ORD-%s-%06d", createdAt.Format("20060102"), n.Int64())
	return OrderNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}
}

// OrderNumberFromString parses an order number loaded from persistence or
// supplied by a user. Returns an error if the value does not match the
// "ORD-YYYYMMDD-NNNNNN" format.
func OrderNumberFromString(s string) (OrderNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !orderNumberPattern.MatchString(normalized) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNNNN", normalized))
	}

	return OrderNumber{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the order number text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate ensures the order number was created through one of the constructors.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
