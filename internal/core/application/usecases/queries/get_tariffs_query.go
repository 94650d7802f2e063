package queries

import (
	"errors"

	"cargotrack/internal/pkg/guard"
)

var ErrGetTariffsQueryIsNotConstructed = errors.New(
	"GetTariffsQuery must be created via NewGetTariffsQuery constructor",
)

// GetTariffsQuery lists pricing tiers ordered by base price ascending.
// Public endpoints request active tariffs only; the admin panel sees all.
type GetTariffsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetTariffsQuery creates a tariff listing query.
func NewGetTariffsQuery(activeOnly bool) GetTariffsQuery {
	return GetTariffsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetTariffsQuery) Validate() error {
	return q.guard.Validate(ErrGetTariffsQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive tariffs are excluded.
func (q GetTariffsQuery) ActiveOnly() bool { return q.activeOnly }

// TariffView is one row of the tariff listing.
type TariffView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	BasePrice    float64  `json:"basePrice"`
	PricePerKg   float64  `json:"pricePerKg"`
	PricePerKm   float64  `json:"pricePerKm"`
	PricePerM3   float64  `json:"pricePerM3"`
	MinWeight    float64  `json:"minWeight"`
	MaxWeight    *float64 `json:"maxWeight,omitempty"`
	DeliveryDays string   `json:"deliveryDays"`
	CargoTypes   []string `json:"cargoTypes"`
	IsExpress    bool     `json:"isExpress"`
	IsActive     bool     `json:"isActive"`
}
