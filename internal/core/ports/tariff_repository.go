package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for tariff aggregates.
type TariffRepository interface {
	// Add persists a new tariff aggregate.
	Add(ctx context.Context, aggregate *tariff.Tariff) error

	// Update persists changes to an existing tariff aggregate.
	Update(ctx context.Context, aggregate *tariff.Tariff) error

	// Get retrieves a tariff aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tariff.Tariff, error)

	// GetAllActive retrieves every active tariff ordered by base price
	// ascending.
	GetAllActive(ctx context.Context) ([]*tariff.Tariff, error)
}
