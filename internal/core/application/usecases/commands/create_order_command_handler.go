package commands

import (
	"context"
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/services"
	"cargotrack/internal/pkg/errs"
)

// ErrTariffNotAvailable is returned when the chosen tariff is inactive or does
// not accept the shipment's weight or cargo type.
var ErrTariffNotAvailable = errors.New("tariff is not available for this shipment")

// CreateOrderResult reports the identifiers of a freshly placed order.
type CreateOrderResult struct {
	OrderID      kernel.UUID
	Number       kernel.OrderNumber
	TrackingCode kernel.TrackingCode
	TotalCost    float64
}

// CreateOrderCommandHandler handles the business logic for placing orders.
//
// Pricing happens inside the creation transaction: the handler loads the
// chosen tariff, resolves the route distance between the two cities (falling
// back to a configured default when no route is registered), computes the
// cost breakdown, and persists the order with its seeded history row.
type CreateOrderCommandHandler struct {
	uowFactory        CreateOrderUoWFactory
	pricing           services.PricingService
	defaultDistanceKm float64
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// defaultDistanceKm is used when no active route connects the cities.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory,
	pricing services.PricingService, defaultDistanceKm float64) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:        uowFactory,
		pricing:           pricing,
		defaultDistanceKm: defaultDistanceKm,
	}
}

// Handle prices and persists a new order.
//
// Fails with ErrTariffNotAvailable when the tariff is inactive, rejects the
// weight, or does not carry the cargo type. The order and its initial history
// row are committed atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context,
	cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := uow.TariffRepository().Get(ctx, cmd.TariffID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !t.IsActive() || !t.AcceptsWeight(cmd.WeightKg()) || !t.SupportsCargoType(cmd.CargoType()) {
		return CreateOrderResult{}, ErrTariffNotAvailable
	}

	distanceKm := h.defaultDistanceKm
	var routeID *kernel.UUID
	r, err := uow.RouteRepository().FindByCities(ctx, cmd.Pickup().City, cmd.Delivery().City)
	switch {
	case err == nil:
		distanceKm = r.DistanceKm()
		id := r.ID()
		routeID = &id
	case errors.Is(err, errs.ErrObjectNotFound):
		// unknown city pair, priced with the fallback distance
	default:
		return CreateOrderResult{}, err
	}

	length, width, height := cmd.Dimensions()
	volumeM3 := services.VolumeFromDimensions(length, width, height)

	quote, err := h.pricing.Calculate(t, cmd.WeightKg(), distanceKm, volumeM3, cmd.DeclaredValue())
	if err != nil {
		return CreateOrderResult{}, err
	}

	pickup, err := cmd.Pickup().toDomainAddress()
	if err != nil {
		return CreateOrderResult{}, err
	}
	delivery, err := cmd.Delivery().toDomainAddress()
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(order.NewOrderParams{
		ID:               kernel.NewUUID(),
		ClientID:         cmd.ClientID(),
		TariffID:         cmd.TariffID(),
		RouteID:          routeID,
		CargoDescription: cmd.CargoDescription(),
		CargoType:        cmd.CargoType(),
		WeightKg:         cmd.WeightKg(),
		VolumeM3:         volumeM3,
		DeclaredValue:    cmd.DeclaredValue(),
		PiecesCount:      cmd.PiecesCount(),
		Pickup:           pickup,
		Delivery:         delivery,
		Cost:             quote.Cost,
		CreatedAt:        time.Now(),
	})
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:      o.ID(),
		Number:       o.Number(),
		TrackingCode: o.TrackingCode(),
		TotalCost:    o.Cost().Total(),
	}, nil
}
