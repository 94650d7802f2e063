package queries

import (
	"errors"

	"cargotrack/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery lists delivery routes ordered by origin city.
type GetRoutesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a route listing query.
func NewGetRoutesQuery(activeOnly bool) GetRoutesQuery {
	return GetRoutesQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive routes are excluded.
func (q GetRoutesQuery) ActiveOnly() bool { return q.activeOnly }

// RouteView is one row of the route listing.
type RouteView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	OriginCity      string   `json:"originCity"`
	DestinationCity string   `json:"destinationCity"`
	DistanceKm      float64  `json:"distanceKm"`
	EstimatedHours  *float64 `json:"estimatedHours,omitempty"`
	IsActive        bool     `json:"isActive"`
}
