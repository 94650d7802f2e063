package tariff

import (
	"errors"
	"fmt"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrTariffIsNotConstructed is returned when a Tariff instance was not created
// through the NewTariff or RestoreTariff factory methods.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff or RestoreTariff")

// Tariff is a named pricing tier: a base price plus per-unit rates for weight,
// distance, and volume, bounded delivery times, and the set of cargo types it
// accepts.
//
// Tariff maintains these invariants:
//   - All price fields are non-negative
//   - deliveryDaysMin <= deliveryDaysMax, both at least 1
//   - minWeight >= 0; maxWeight, when set, is >= minWeight
//   - At least one accepted cargo type
//
// Tariffs referenced by placed orders are never edited in place for pricing
// purposes: orders freeze the cost breakdown they were charged, so historical
// orders keep the original price even if the tariff changes later.
type Tariff struct {
	id          kernel.UUID
	name        string
	description string

	basePrice  float64
	pricePerKg float64
	pricePerKm float64
	pricePerM3 float64

	minWeight float64
	maxWeight *float64

	deliveryDaysMin int
	deliveryDaysMax int

	cargoTypes []kernel.CargoType
	isExpress  bool
	isActive   bool

	isConstructed bool
}

// NewTariffParams carries the attributes of a new pricing tier.
type NewTariffParams struct {
	ID              kernel.UUID
	Name            string
	Description     string
	BasePrice       float64
	PricePerKg      float64
	PricePerKm      float64
	PricePerM3      float64
	MinWeight       float64
	MaxWeight       *float64
	DeliveryDaysMin int
	DeliveryDaysMax int
	CargoTypes      []kernel.CargoType
	IsExpress       bool
}

// NewTariff creates an active tariff after validating all invariants.
func NewTariff(p NewTariffParams) (*Tariff, error) {
	t := &Tariff{
		isExpress:     p.IsExpress,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(p.ID),
		t.setName(p.Name),
		t.setPrices(p.BasePrice, p.PricePerKg, p.PricePerKm, p.PricePerM3),
		t.setWeightBounds(p.MinWeight, p.MaxWeight),
		t.setDeliveryDays(p.DeliveryDaysMin, p.DeliveryDaysMax),
		t.setCargoTypes(p.CargoTypes),
	); err != nil {
		return nil, err
	}

	t.description = p.Description
	return t, nil
}

// RestoreTariff rebuilds a tariff from persistence, including its active flag.
func RestoreTariff(p NewTariffParams, isActive bool) (*Tariff, error) {
	t, err := NewTariff(p)
	if err != nil {
		return nil, err
	}
	t.isActive = isActive
	return t, nil
}

// Validate ensures the tariff was created through a factory method.
func (t *Tariff) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTariffIsNotConstructed
	}
	return nil
}

// IsEqual compares two tariffs by their unique identifiers.
func (t *Tariff) IsEqual(other *Tariff) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tariff's unique identifier.
func (t *Tariff) ID() kernel.UUID { return t.id }

// Name returns the display name of the pricing tier.
func (t *Tariff) Name() string { return t.name }

// Description returns the optional marketing description.
func (t *Tariff) Description() string { return t.description }

// BasePrice returns the flat charge applied to every shipment.
func (t *Tariff) BasePrice() float64 { return t.basePrice }

// PricePerKg returns the per-kilogram rate.
func (t *Tariff) PricePerKg() float64 { return t.pricePerKg }

// PricePerKm returns the per-kilometer rate.
func (t *Tariff) PricePerKm() float64 { return t.pricePerKm }

// PricePerM3 returns the per-cubic-meter rate.
func (t *Tariff) PricePerM3() float64 { return t.pricePerM3 }

// MinWeight returns the minimum shippable weight in kilograms.
func (t *Tariff) MinWeight() float64 { return t.minWeight }

// MaxWeight returns the maximum shippable weight, or nil if unbounded.
func (t *Tariff) MaxWeight() *float64 { return t.maxWeight }

// DeliveryDaysMin returns the lower delivery-time bound in days.
func (t *Tariff) DeliveryDaysMin() int { return t.deliveryDaysMin }

// DeliveryDaysMax returns the upper delivery-time bound in days.
func (t *Tariff) DeliveryDaysMax() int { return t.deliveryDaysMax }

// DeliveryDays renders the delivery-time bounds as "{min}-{max}".
func (t *Tariff) DeliveryDays() string {
	return fmt.Sprintf("%d-%d", t.deliveryDaysMin, t.deliveryDaysMax)
}

// CargoTypes returns a copy of the accepted cargo types.
func (t *Tariff) CargoTypes() []kernel.CargoType {
	return append([]kernel.CargoType(nil), t.cargoTypes...)
}

// IsExpress reports whether this is an expedited tier.
func (t *Tariff) IsExpress() bool { return t.isExpress }

// IsActive reports whether the tariff is offered to new orders.
func (t *Tariff) IsActive() bool { return t.isActive }

// SupportsCargoType reports whether the tariff accepts the given cargo type.
func (t *Tariff) SupportsCargoType(c kernel.CargoType) bool {
	for _, known := range t.cargoTypes {
		if known == c {
			return true
		}
	}
	return false
}

// AcceptsWeight reports whether weightKg falls within the tariff's bounds.
func (t *Tariff) AcceptsWeight(weightKg float64) bool {
	if weightKg < t.minWeight {
		return false
	}
	if t.maxWeight != nil && weightKg > *t.maxWeight {
		return false
	}
	return true
}

// Deactivate withdraws the tariff from new orders. Existing orders keep their
// frozen cost breakdowns.
func (t *Tariff) Deactivate() {
	t.isActive = false
}

// Activate makes the tariff available to new orders again.
func (t *Tariff) Activate() {
	t.isActive = true
}

func (t *Tariff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tariff) setName(name string) error {
	if len(name) < 2 {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Tariff) setPrices(base, perKg, perKm, perM3 float64) error {
	prices := map[string]float64{
		"basePrice":  base,
		"pricePerKg": perKg,
		"pricePerKm": perKm,
		"pricePerM3": perM3,
	}
	for name, v := range prices {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%.4f is negative", v))
		}
	}
	t.basePrice = base
	t.pricePerKg = perKg
	t.pricePerKm = perKm
	t.pricePerM3 = perM3
	return nil
}

func (t *Tariff) setWeightBounds(minWeight float64, maxWeight *float64) error {
	if minWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minWeight",
			fmt.Errorf("%.4f is negative", minWeight))
	}
	if maxWeight != nil && *maxWeight < minWeight {
		return errs.NewValueIsInvalidErrorWithCause("maxWeight",
			fmt.Errorf("%.4f is less than minWeight %.4f", *maxWeight, minWeight))
	}
	t.minWeight = minWeight
	t.maxWeight = maxWeight
	return nil
}

func (t *Tariff) setDeliveryDays(minDays, maxDays int) error {
	if minDays < 1 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDaysMin",
			fmt.Errorf("%d is less than 1", minDays))
	}
	if maxDays < minDays {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDaysMax",
			fmt.Errorf("%d is less than deliveryDaysMin %d", maxDays, minDays))
	}
	t.deliveryDaysMin = minDays
	t.deliveryDaysMax = maxDays
	return nil
}

func (t *Tariff) setCargoTypes(cargoTypes []kernel.CargoType) error {
	if len(cargoTypes) == 0 {
		return errs.NewValueIsRequiredError("cargoTypes")
	}
	for _, c := range cargoTypes {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	t.cargoTypes = append([]kernel.CargoType(nil), cargoTypes...)
	return nil
}
