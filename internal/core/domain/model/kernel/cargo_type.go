package kernel

import (
	"fmt"

	"cargotrack/internal/pkg/errs"
)

// CargoType classifies the shipped goods. Tariffs declare which cargo types
// they accept; the calculator and order form surface only matching tariffs.
type CargoType string

const (
	CargoStandard   CargoType = "standard"
	CargoFragile    CargoType = "fragile"
	CargoPerishable CargoType = "perishable"
	CargoHazardous  CargoType = "hazardous"
	CargoOversized  CargoType = "oversized"
	CargoValuable   CargoType = "valuable"
)

// AllCargoTypes lists every defined cargo type in display order.
func AllCargoTypes() []CargoType {
	return []CargoType{
		CargoStandard,
		CargoFragile,
		CargoPerishable,
		CargoHazardous,
		CargoOversized,
		CargoValuable,
	}
}

// Validate checks that the cargo type is one of the defined values.
func (c CargoType) Validate() error {
	for _, known := range AllCargoTypes() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("cargoType",
		fmt.Errorf("%q is not a valid cargo type", string(c)))
}

// String returns the cargo type as stored in the database.
func (c CargoType) String() string {
	return string(c)
}
