package queries

import (
	"errors"

	"cargotrack/internal/pkg/guard"
)

var ErrGetCitiesQueryIsNotConstructed = errors.New(
	"GetCitiesQuery must be created via NewGetCitiesQuery constructor",
)

// GetCitiesQuery lists every city reachable through an active route, for
// the calculator's city pickers.
type GetCitiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCitiesQuery creates a city listing query.
func NewGetCitiesQuery() GetCitiesQuery {
	return GetCitiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetCitiesQueryIsNotConstructed)
}
