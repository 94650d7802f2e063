package commands

import (
	"errors"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents an administrator's request to register a
// route between two cities with a measured distance.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	name            string
	originCity      string
	destinationCity string
	distanceKm      float64
	estimatedHours  *float64

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a new route.
// Name is optional; the route derives one from the cities when empty.
func NewCreateRouteCommand(name, originCity, destinationCity string,
	distanceKm float64, estimatedHours *float64) (CreateRouteCommand, error) {
	if originCity == "" {
		return CreateRouteCommand{}, errs.NewValueIsRequiredError("originCity")
	}
	if destinationCity == "" {
		return CreateRouteCommand{}, errs.NewValueIsRequiredError("destinationCity")
	}
	if distanceKm <= 0 {
		return CreateRouteCommand{}, errs.NewValueIsInvalidError("distanceKm")
	}

	return CreateRouteCommand{
		name:            name,
		originCity:      originCity,
		destinationCity: destinationCity,
		distanceKm:      distanceKm,
		estimatedHours:  estimatedHours,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// Name returns the optional display name.
func (c CreateRouteCommand) Name() string { return c.name }

// OriginCity returns the departure city.
func (c CreateRouteCommand) OriginCity() string { return c.originCity }

// DestinationCity returns the arrival city.
func (c CreateRouteCommand) DestinationCity() string { return c.destinationCity }

// DistanceKm returns the measured road distance.
func (c CreateRouteCommand) DistanceKm() float64 { return c.distanceKm }

// EstimatedHours returns the expected transit time, or nil.
func (c CreateRouteCommand) EstimatedHours() *float64 { return c.estimatedHours }
