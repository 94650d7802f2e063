package commands

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderAddress carries one side of the shipment: where to pick the cargo
// up or where to deliver it, with a contact person.
type CreateOrderAddress struct {
	City         string
	Street       string
	ContactName  string
	ContactPhone string
}

// CreateOrderCommand represents a client's request to place a delivery order.
//
// The command carries everything the handler needs to price and persist the
// order: the chosen tariff, cargo parameters, and both addresses. Package
// dimensions are given in centimeters; the handler derives the volume.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(NewCreateOrderParams{
//	    ClientID:         clientID,
//	    TariffID:         tariffID,
//	    CargoDescription: "Коробки с документами",
//	    CargoType:        kernel.CargoStandard,
//	    WeightKg:         10,
//	    Pickup:           CreateOrderAddress{City: "Москва", ...},
//	    Delivery:         CreateOrderAddress{City: "Санкт-Петербург", ...},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID         kernel.UUID
	tariffID         kernel.UUID
	cargoDescription string
	cargoType        kernel.CargoType
	weightKg         float64
	lengthCm         float64
	widthCm          float64
	heightCm         float64
	declaredValue    float64
	piecesCount      int
	pickup           CreateOrderAddress
	delivery         CreateOrderAddress

	guard guard.ConstructorGuard
}

// NewCreateOrderParams carries the attributes of a new order request.
type NewCreateOrderParams struct {
	ClientID         kernel.UUID
	TariffID         kernel.UUID
	CargoDescription string
	CargoType        kernel.CargoType
	WeightKg         float64
	LengthCm         float64
	WidthCm          float64
	HeightCm         float64
	DeclaredValue    float64
	PiecesCount      int
	Pickup           CreateOrderAddress
	Delivery         CreateOrderAddress
}

// NewCreateOrderCommand creates a command to place a new delivery order.
// Validates identifiers, cargo parameters, and that both cities are present.
func NewCreateOrderCommand(p NewCreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		lengthCm:      p.LengthCm,
		widthCm:       p.WidthCm,
		heightCm:      p.HeightCm,
		declaredValue: p.DeclaredValue,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(p.ClientID),
		cmd.setTariffID(p.TariffID),
		cmd.setCargo(p.CargoDescription, p.CargoType, p.WeightKg, p.PiecesCount),
		cmd.setAddresses(p.Pickup, p.Delivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if p.DeclaredValue < 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("declaredValue")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the identifier of the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID { return c.clientID }

// TariffID returns the identifier of the chosen tariff.
func (c CreateOrderCommand) TariffID() kernel.UUID { return c.tariffID }

// CargoDescription returns the free-form cargo description.
func (c CreateOrderCommand) CargoDescription() string { return c.cargoDescription }

// CargoType returns the declared cargo category.
func (c CreateOrderCommand) CargoType() kernel.CargoType { return c.cargoType }

// WeightKg returns the declared weight in kilograms.
func (c CreateOrderCommand) WeightKg() float64 { return c.weightKg }

// Dimensions returns the package dimensions in centimeters.
func (c CreateOrderCommand) Dimensions() (length, width, height float64) {
	return c.lengthCm, c.widthCm, c.heightCm
}

// DeclaredValue returns the declared cargo value used for insurance.
func (c CreateOrderCommand) DeclaredValue() float64 { return c.declaredValue }

// PiecesCount returns the number of packages.
func (c CreateOrderCommand) PiecesCount() int { return c.piecesCount }

// Pickup returns the pickup address.
func (c CreateOrderCommand) Pickup() CreateOrderAddress { return c.pickup }

// Delivery returns the delivery address.
func (c CreateOrderCommand) Delivery() CreateOrderAddress { return c.delivery }

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setTariffID(tariffID kernel.UUID) error {
	if err := tariffID.Validate(); err != nil {
		return err
	}
	c.tariffID = tariffID
	return nil
}

func (c *CreateOrderCommand) setCargo(description string, cargoType kernel.CargoType,
	weightKg float64, piecesCount int) error {
	if description == "" {
		return errs.NewValueIsRequiredError("cargoDescription")
	}
	if err := cargoType.Validate(); err != nil {
		return err
	}
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	if piecesCount < 1 {
		return errs.NewValueIsInvalidError("piecesCount")
	}

	c.cargoDescription = description
	c.cargoType = cargoType
	c.weightKg = weightKg
	c.piecesCount = piecesCount
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickup, delivery CreateOrderAddress) error {
	if pickup.City == "" {
		return errs.NewValueIsRequiredError("pickup.city")
	}
	if delivery.City == "" {
		return errs.NewValueIsRequiredError("delivery.city")
	}
	c.pickup = pickup
	c.delivery = delivery
	return nil
}

// toDomainAddress builds the order aggregate's address value object.
func (a CreateOrderAddress) toDomainAddress() (order.Address, error) {
	return order.NewAddress(a.City, a.Street, a.ContactName, a.ContactPhone)
}
