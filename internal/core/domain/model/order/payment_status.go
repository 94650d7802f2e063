package order

import (
	"fmt"

	"cargotrack/internal/pkg/errs"
)

// PaymentStatus tracks the billing state of an order, independently of the
// delivery lifecycle.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// PaymentStatusFromString parses a stored payment status value.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	p := PaymentStatus(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks that the payment status is one of the defined values.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", string(p)))
}

// String returns the payment status as stored in the database.
func (p PaymentStatus) String() string {
	return string(p)
}
