package order

import (
	"fmt"

	"cargotrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly forward-moving state machine:
//
//	Pending ──> Confirmed ──> Pickup ──> InTransit ──> Delivered
//	   │            │           │            │
//	   └────────────┴─────┬─────┴────────────┘
//	                      v
//	                  Cancelled
//
// Delivered and Cancelled are terminal; no skipping ahead is allowed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every newly placed order.
	StatusPending

	// StatusConfirmed indicates a manager accepted the order.
	StatusConfirmed

	// StatusPickup indicates the cargo has been collected from the sender.
	StatusPickup

	// StatusInTransit indicates the cargo is on its way to the destination.
	StatusInTransit

	// StatusDelivered indicates the cargo reached the recipient. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled
)

// ErrInvalidTransition is wrapped by every illegal status change so callers can
// classify transition failures with errors.Is.
var ErrInvalidTransition = fmt.Errorf("invalid order status transition")

// successor maps each non-terminal status to its single legal forward successor.
// Cancellation is handled separately in TransitionTo.
func successor() map[Status]Status {
	return map[Status]Status{
		StatusPending:   StatusConfirmed,
		StatusConfirmed: StatusPickup,
		StatusPickup:    StatusInTransit,
		StatusInTransit: StatusDelivered,
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPickup:    "pickup",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPickup:    "pickup",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a status from its persisted string form.
// Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status as stored in the database
// and exposed over the API. Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to target is a legal
// transition: either the single forward successor of s, or StatusCancelled
// from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	return successor()[s] == target
}

// TransitionTo validates the move from s to target and returns the new status.
//
// Returns an error wrapping ErrInvalidTransition if target is not reachable
// from s. Used by Order.TransitionTo to enforce the lifecycle.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
