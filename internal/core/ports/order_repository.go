package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their status history; Add and Update
// persist both in the same transaction.
type OrderRepository interface {
	// Add persists a new order aggregate and its seeded history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, appending
	// any new history entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingCode retrieves an order by its public tracking code.
	// The code must already be normalized (uppercase, trimmed).
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error)
}
