package commands

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrUpdateTariffCommandIsNotConstructed = errors.New(
	"UpdateTariffCommand must be created via NewUpdateTariffCommand constructor",
)

// UpdateTariffCommand represents an administrator's request to replace a
// tariff's attributes or change its availability. Tariffs referenced by
// existing orders are deactivated rather than deleted; orders keep the cost
// breakdown they were priced with.
type UpdateTariffCommand struct { //nolint:recvcheck //using for validation
	tariffID kernel.UUID
	attrs    TariffAttributes
	isActive bool

	guard guard.ConstructorGuard
}

// NewUpdateTariffCommand creates a command to update a pricing tier.
func NewUpdateTariffCommand(tariffID kernel.UUID, attrs TariffAttributes,
	isActive bool) (UpdateTariffCommand, error) {
	if err := tariffID.Validate(); err != nil {
		return UpdateTariffCommand{}, err
	}
	if attrs.Name == "" {
		return UpdateTariffCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateTariffCommand{
		tariffID: tariffID,
		attrs:    attrs,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTariffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTariffCommandIsNotConstructed)
}

// TariffID returns the identifier of the tariff to update.
func (c UpdateTariffCommand) TariffID() kernel.UUID { return c.tariffID }

// Attributes returns the replacement tariff attributes.
func (c UpdateTariffCommand) Attributes() TariffAttributes { return c.attrs }

// IsActive returns the requested availability flag.
func (c UpdateTariffCommand) IsActive() bool { return c.isActive }
