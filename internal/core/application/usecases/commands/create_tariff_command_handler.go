package commands

import (
	"context"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/tariff"
)

// CreateTariffCommandHandler persists new pricing tiers.
type CreateTariffCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewCreateTariffCommandHandler creates a handler for tariff creation.
func NewCreateTariffCommandHandler(uowFactory TariffUoWFactory) CreateTariffCommandHandler {
	return CreateTariffCommandHandler{uowFactory: uowFactory}
}

// Handle validates the attributes through the aggregate constructor and
// persists the new tariff. Returns the generated tariff ID.
func (h *CreateTariffCommandHandler) Handle(ctx context.Context,
	cmd CreateTariffCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	attrs := cmd.Attributes()
	t, err := tariff.NewTariff(tariff.NewTariffParams{
		ID:              kernel.NewUUID(),
		Name:            attrs.Name,
		Description:     attrs.Description,
		BasePrice:       attrs.BasePrice,
		PricePerKg:      attrs.PricePerKg,
		PricePerKm:      attrs.PricePerKm,
		PricePerM3:      attrs.PricePerM3,
		MinWeight:       attrs.MinWeight,
		MaxWeight:       attrs.MaxWeight,
		DeliveryDaysMin: attrs.DeliveryDaysMin,
		DeliveryDaysMax: attrs.DeliveryDaysMax,
		CargoTypes:      attrs.CargoTypes,
		IsExpress:       attrs.IsExpress,
	})
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

	if err = uow.TariffRepository().Add(ctx, t); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return t.ID(), nil
}
