package order

import (
	"errors"
	"fmt"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrHistoryIsCorrupted is returned when persisted history entries do not form
	// a valid prefix of the order lifecycle.
	ErrHistoryIsCorrupted = errors.New("order status history does not form a valid lifecycle prefix")
)

// Order represents a single shipment request. It is the aggregate root that
// manages the shipment from placement through delivery or cancellation.
//
// Order maintains these invariants:
//   - Identity fields (id, order number, tracking code, client, tariff) are always valid
//   - Weight is positive; volume, declared value are non-negative; pieces count >= 1
//   - The cost breakdown satisfies total = sum of components - discount, total >= 0
//   - Status only changes through TransitionTo, which follows the lifecycle
//     state machine and appends exactly one history entry per transition
//   - History is append-only and ordered by creation time
type Order struct {
	id           kernel.UUID
	number       kernel.OrderNumber
	trackingCode kernel.TrackingCode
	clientID     kernel.UUID
	managerID    *kernel.UUID
	tariffID     kernel.UUID
	routeID      *kernel.UUID

	cargoDescription string
	cargoType        kernel.CargoType
	weightKg         float64
	volumeM3         float64
	declaredValue    float64
	piecesCount      int

	pickup   Address
	delivery Address

	cost               CostBreakdown
	status             Status
	paymentStatus      PaymentStatus
	currentLocation    string
	cancellationReason string

	createdAt   time.Time
	confirmedAt *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	history []HistoryEntry

	isConstructed bool
}

// NewOrderParams carries everything needed to place a new order.
// RouteID is nil when no route matched and the fallback distance was used.
type NewOrderParams struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	TariffID         kernel.UUID
	RouteID          *kernel.UUID
	CargoDescription string
	CargoType        kernel.CargoType
	WeightKg         float64
	VolumeM3         float64
	DeclaredValue    float64
	PiecesCount      int
	Pickup           Address
	Delivery         Address
	Cost             CostBreakdown
	CreatedAt        time.Time
}

// NewOrder places a new order in pending status with payment pending.
// It generates the order number and tracking code, stamps the creation time,
// and seeds the status history with the initial pending entry.
func NewOrder(p NewOrderParams) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     p.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIdentity(p.ID, p.ClientID, p.TariffID, p.RouteID),
		o.setCargo(p.CargoDescription, p.CargoType, p.WeightKg, p.VolumeM3, p.DeclaredValue, p.PiecesCount),
		o.setAddresses(p.Pickup, p.Delivery),
		o.setCost(p.Cost),
	); err != nil {
		return nil, err
	}

	o.number = kernel.NewOrderNumber(p.CreatedAt)
	o.trackingCode = kernel.NewTrackingCode()
	o.currentLocation = p.Pickup.City()

	initial, err := NewHistoryEntry(StatusPending, p.Pickup.City(), "", nil, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{initial}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Number             kernel.OrderNumber
	TrackingCode       kernel.TrackingCode
	ClientID           kernel.UUID
	ManagerID          *kernel.UUID
	TariffID           kernel.UUID
	RouteID            *kernel.UUID
	CargoDescription   string
	CargoType          kernel.CargoType
	WeightKg           float64
	VolumeM3           float64
	DeclaredValue      float64
	PiecesCount        int
	Pickup             Address
	Delivery           Address
	Cost               CostBreakdown
	Status             Status
	PaymentStatus      PaymentStatus
	CurrentLocation    string
	CancellationReason string
	CreatedAt          time.Time
	ConfirmedAt        *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	History            []HistoryEntry
}

// RestoreOrder rebuilds an order from persistence, re-validating every
// invariant including that the stored history forms a valid, time-ordered
// prefix of the lifecycle state machine.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		status:             p.Status,
		paymentStatus:      p.PaymentStatus,
		currentLocation:    p.CurrentLocation,
		cancellationReason: p.CancellationReason,
		createdAt:          p.CreatedAt,
		confirmedAt:        p.ConfirmedAt,
		pickedUpAt:         p.PickedUpAt,
		deliveredAt:        p.DeliveredAt,
		cancelledAt:        p.CancelledAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setIdentity(p.ID, p.ClientID, p.TariffID, p.RouteID),
		o.setCargo(p.CargoDescription, p.CargoType, p.WeightKg, p.VolumeM3, p.DeclaredValue, p.PiecesCount),
		o.setAddresses(p.Pickup, p.Delivery),
		o.setCost(p.Cost),
		p.Number.Validate(),
		p.TrackingCode.Validate(),
		p.Status.Validate(),
		p.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.number = p.Number
	o.trackingCode = p.TrackingCode

	if p.ManagerID != nil {
		if err := p.ManagerID.Validate(); err != nil {
			return nil, err
		}
		o.managerID = p.ManagerID
	}

	if err := validateHistory(p.History, p.Status); err != nil {
		return nil, err
	}
	o.history = append([]HistoryEntry(nil), p.History...)

	return o, nil
}

// validateHistory checks that entries are a valid, time-ordered prefix of the
// lifecycle: the first entry is pending, every step is a legal transition, and
// the last entry matches the order's current status.
func validateHistory(history []HistoryEntry, current Status) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: history is empty", ErrHistoryIsCorrupted)
	}
	if history[0].Status() != StatusPending {
		return fmt.Errorf("%w: first entry is %s, want pending", ErrHistoryIsCorrupted, history[0].Status())
	}

	for i := 1; i < len(history); i++ {
		prev, next := history[i-1], history[i]
		if !prev.Status().CanTransitionTo(next.Status()) {
			return fmt.Errorf("%w: illegal step %s -> %s",
				ErrHistoryIsCorrupted, prev.Status(), next.Status())
		}
		if next.CreatedAt().Before(prev.CreatedAt()) {
			return fmt.Errorf("%w: entries are not ordered by creation time", ErrHistoryIsCorrupted)
		}
	}

	if last := history[len(history)-1].Status(); last != current {
		return fmt.Errorf("%w: last entry is %s, order status is %s", ErrHistoryIsCorrupted, last, current)
	}

	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() kernel.OrderNumber { return o.number }

// TrackingCode returns the public tracking code.
func (o *Order) TrackingCode() kernel.TrackingCode { return o.trackingCode }

// ClientID returns the ID of the client who placed the order.
func (o *Order) ClientID() kernel.UUID { return o.clientID }

// ManagerID returns the assigned manager's ID, or nil if unassigned.
func (o *Order) ManagerID() *kernel.UUID { return o.managerID }

// TariffID returns the tariff the order was priced with.
func (o *Order) TariffID() kernel.UUID { return o.tariffID }

// RouteID returns the matched route's ID, or nil if the fallback distance was used.
func (o *Order) RouteID() *kernel.UUID { return o.routeID }

// CargoDescription returns the free-form cargo description.
func (o *Order) CargoDescription() string { return o.cargoDescription }

// CargoType returns the cargo classification.
func (o *Order) CargoType() kernel.CargoType { return o.cargoType }

// WeightKg returns the cargo weight in kilograms.
func (o *Order) WeightKg() float64 { return o.weightKg }

// VolumeM3 returns the cargo volume in cubic meters.
func (o *Order) VolumeM3() float64 { return o.volumeM3 }

// DeclaredValue returns the declared cargo value used for insurance.
func (o *Order) DeclaredValue() float64 { return o.declaredValue }

// PiecesCount returns the number of packages in the shipment.
func (o *Order) PiecesCount() int { return o.piecesCount }

// Pickup returns the pickup address.
func (o *Order) Pickup() Address { return o.pickup }

// Delivery returns the delivery address.
func (o *Order) Delivery() Address { return o.delivery }

// Cost returns the frozen cost breakdown charged for this order.
func (o *Order) Cost() CostBreakdown { return o.cost }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// CurrentLocation returns the last reported cargo location.
func (o *Order) CurrentLocation() string { return o.currentLocation }

// CancellationReason returns the reason recorded when the order was cancelled.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ConfirmedAt returns when the order was confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// PickedUpAt returns when the cargo was collected, or nil.
func (o *Order) PickedUpAt() *time.Time { return o.pickedUpAt }

// DeliveredAt returns when the cargo was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// History returns a copy of the status history, oldest first.
// The returned slice can be modified freely without affecting the order.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// TransitionTo moves the order to newStatus, recording location and notes in
// the audit trail. actor identifies the principal performing the change and
// may be nil for system transitions.
//
// The transition must be legal for the current status: only the single
// forward successor or cancellation from a non-terminal state is allowed.
// On success exactly one history entry is appended; when cancelling, notes
// are also recorded as the cancellation reason.
func (o *Order) TransitionTo(newStatus Status, location, notes string, actor *kernel.UUID, now time.Time) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	// History timestamps must never run backwards, even with a skewed clock.
	if last := o.history[len(o.history)-1].CreatedAt(); now.Before(last) {
		now = last
	}

	entry, err := NewHistoryEntry(next, location, notes, actor, now)
	if err != nil {
		return err
	}

	o.status = next
	if location != "" {
		o.currentLocation = location
	}

	switch next {
	case StatusConfirmed:
		o.confirmedAt = &now
	case StatusPickup:
		o.pickedUpAt = &now
	case StatusDelivered:
		o.deliveredAt = &now
	case StatusCancelled:
		o.cancelledAt = &now
		o.cancellationReason = notes
	case StatusUnknown, StatusPending, StatusInTransit:
	}

	o.history = append(o.history, entry)
	return nil
}

// AssignManager assigns a manager to the order.
func (o *Order) AssignManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	o.managerID = &managerID
	return nil
}

// SetPaymentStatus updates the billing state of the order.
func (o *Order) SetPaymentStatus(p PaymentStatus) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.paymentStatus = p
	return nil
}

func (o *Order) setIdentity(id, clientID, tariffID kernel.UUID, routeID *kernel.UUID) error {
	if err := errors.Join(id.Validate(), clientID.Validate(), tariffID.Validate()); err != nil {
		return err
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return err
		}
	}
	o.id = id
	o.clientID = clientID
	o.tariffID = tariffID
	o.routeID = routeID
	return nil
}

func (o *Order) setCargo(description string, cargoType kernel.CargoType, weightKg, volumeM3, declaredValue float64, piecesCount int) error {
	if description == "" {
		return errs.NewValueIsRequiredError("cargoDescription")
	}
	if err := cargoType.Validate(); err != nil {
		return err
	}
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%.4f is not greater than 0", weightKg))
	}
	if volumeM3 < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volumeM3",
			fmt.Errorf("%.4f is negative", volumeM3))
	}
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue",
			fmt.Errorf("%.4f is negative", declaredValue))
	}
	if piecesCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("piecesCount",
			fmt.Errorf("%d is less than 1", piecesCount))
	}

	o.cargoDescription = description
	o.cargoType = cargoType
	o.weightKg = weightKg
	o.volumeM3 = volumeM3
	o.declaredValue = declaredValue
	o.piecesCount = piecesCount
	return nil
}

func (o *Order) setAddresses(pickup, delivery Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}
	o.pickup = pickup
	o.delivery = delivery
	return nil
}

func (o *Order) setCost(cost CostBreakdown) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	o.cost = cost
	return nil
}
