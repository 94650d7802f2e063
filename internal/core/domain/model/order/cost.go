package order

import (
	"errors"
	"fmt"
	"math"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

// ErrCostBreakdownIsNotConstructed is returned when validating a zero-value CostBreakdown.
var ErrCostBreakdownIsNotConstructed = errors.New(
	"CostBreakdown must be created via NewCostBreakdown or RestoreCostBreakdown")

// costTolerance absorbs float rounding when checking the total against the
// sum of its components.
const costTolerance = 1e-6

// CostBreakdown is the itemized delivery cost charged for an order. Once an
// order is placed the breakdown is frozen with it; historical orders keep the
// price actually charged even if the tariff changes later.
//
// Invariant: Total = Base + Weight + Distance + Volume + Insurance +
// ExtraServices - Discount, and Total >= 0.
type CostBreakdown struct { //nolint:recvcheck //using for validation
	base          float64
	weight        float64
	distance      float64
	volume        float64
	insurance     float64
	extraServices float64
	discount      float64
	total         float64

	guard guard.ConstructorGuard
}

// NewCostBreakdown assembles a breakdown from its components and derives the
// total, so the invariant holds by construction. All components and the
// resulting total must be non-negative.
func NewCostBreakdown(base, weight, distance, volume, insurance, extraServices, discount float64) (CostBreakdown, error) {
	c := CostBreakdown{
		base:          base,
		weight:        weight,
		distance:      distance,
		volume:        volume,
		insurance:     insurance,
		extraServices: extraServices,
		discount:      discount,
		total:         base + weight + distance + volume + insurance + extraServices - discount,
		guard:         guard.NewConstructorGuard(),
	}

	if err := c.checkInvariant(); err != nil {
		return CostBreakdown{}, err
	}

	return c, nil
}

// RestoreCostBreakdown rebuilds a breakdown from persistence, including the
// stored total. Returns an error if the stored total does not match the sum
// of its components or any field is negative.
func RestoreCostBreakdown(base, weight, distance, volume, insurance, extraServices, discount, total float64) (CostBreakdown, error) {
	c := CostBreakdown{
		base:          base,
		weight:        weight,
		distance:      distance,
		volume:        volume,
		insurance:     insurance,
		extraServices: extraServices,
		discount:      discount,
		total:         total,
		guard:         guard.NewConstructorGuard(),
	}

	expected := base + weight + distance + volume + insurance + extraServices - discount
	if math.Abs(expected-total) > costTolerance {
		return CostBreakdown{}, errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("stored total %.4f does not match component sum %.4f", total, expected))
	}

	if err := c.checkInvariant(); err != nil {
		return CostBreakdown{}, err
	}

	return c, nil
}

// Validate ensures the breakdown was created through a constructor.
func (c CostBreakdown) Validate() error {
	return c.guard.Validate(ErrCostBreakdownIsNotConstructed)
}

// Base returns the tariff's flat base charge.
func (c CostBreakdown) Base() float64 { return c.base }

// Weight returns the weight-proportional charge.
func (c CostBreakdown) Weight() float64 { return c.weight }

// Distance returns the distance-proportional charge.
func (c CostBreakdown) Distance() float64 { return c.distance }

// Volume returns the volume-proportional charge.
func (c CostBreakdown) Volume() float64 { return c.volume }

// Insurance returns the declared-value insurance charge.
func (c CostBreakdown) Insurance() float64 { return c.insurance }

// ExtraServices returns the charge for additional services.
func (c CostBreakdown) ExtraServices() float64 { return c.extraServices }

// Discount returns the discount subtracted from the total.
func (c CostBreakdown) Discount() float64 { return c.discount }

// Total returns the final amount charged.
func (c CostBreakdown) Total() float64 { return c.total }

func (c CostBreakdown) checkInvariant() error {
	components := map[string]float64{
		"baseCost":          c.base,
		"weightCost":        c.weight,
		"distanceCost":      c.distance,
		"volumeCost":        c.volume,
		"insuranceCost":     c.insurance,
		"extraServicesCost": c.extraServices,
		"discountAmount":    c.discount,
	}
	for name, v := range components {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%.4f is negative", v))
		}
	}
	if c.total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%.4f is negative", c.total))
	}
	return nil
}
