package commands

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrCreateTariffCommandIsNotConstructed = errors.New(
	"CreateTariffCommand must be created via NewCreateTariffCommand constructor",
)

// TariffAttributes carries the full attribute set of a pricing tier, shared by
// the create and update tariff commands. Validation of the business invariants
// happens in the tariff aggregate constructor.
type TariffAttributes struct {
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

// CreateTariffCommand represents an administrator's request to add a pricing tier.
type CreateTariffCommand struct { //nolint:recvcheck //using for validation
	attrs TariffAttributes

	guard guard.ConstructorGuard
}

// NewCreateTariffCommand creates a command to add a new pricing tier.
// Only presence is checked here; the aggregate enforces the numeric invariants.
func NewCreateTariffCommand(attrs TariffAttributes) (CreateTariffCommand, error) {
	if attrs.Name == "" {
		return CreateTariffCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateTariffCommand{
		attrs: attrs,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTariffCommand) Validate() error {
	return c.guard.Validate(ErrCreateTariffCommandIsNotConstructed)
}

// Attributes returns the requested tariff attributes.
func (c CreateTariffCommand) Attributes() TariffAttributes {
	return c.attrs
}
