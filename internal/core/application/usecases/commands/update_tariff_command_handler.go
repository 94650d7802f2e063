package commands

import (
	"context"

	"cargotrack/internal/core/domain/model/tariff"
)

// UpdateTariffCommandHandler replaces a tariff's attributes in place.
type UpdateTariffCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewUpdateTariffCommandHandler creates a handler for tariff updates.
func NewUpdateTariffCommandHandler(uowFactory TariffUoWFactory) UpdateTariffCommandHandler {
	return UpdateTariffCommandHandler{uowFactory: uowFactory}
}

// Handle loads the tariff to ensure it exists, rebuilds it with the new
// attributes under the same identifier, and persists the replacement.
func (h *UpdateTariffCommandHandler) Handle(ctx context.Context, cmd UpdateTariffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tariffRepo := uow.TariffRepository()
	if _, err := tariffRepo.Get(ctx, cmd.TariffID()); err != nil {
		return err
	}

	attrs := cmd.Attributes()
	updated, err := tariff.RestoreTariff(tariff.NewTariffParams{
		ID:              cmd.TariffID(),
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
	}, cmd.IsActive())
	if err != nil {
		return err
	}

	if err = tariffRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
