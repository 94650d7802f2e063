package commands

import (
	"context"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/route"
)

// CreateRouteCommandHandler persists new delivery routes.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route registration.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle validates the route through the aggregate constructor and persists
// it. Returns the generated route ID.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context,
	cmd CreateRouteCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	r, err := route.NewRoute(kernel.NewUUID(), cmd.Name(), cmd.OriginCity(),
		cmd.DestinationCity(), cmd.DistanceKm(), cmd.EstimatedHours())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return r.ID(), nil
}
