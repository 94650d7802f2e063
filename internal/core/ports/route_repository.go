package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// FindByCities retrieves the active route between two cities. City
	// names are matched exactly, case included. Returns an
	// ObjectNotFoundError when no active route connects them.
	FindByCities(ctx context.Context, originCity, destinationCity string) (*route.Route, error)

	// GetAllActive retrieves every active route ordered by origin city.
	GetAllActive(ctx context.Context) ([]*route.Route, error)
}
