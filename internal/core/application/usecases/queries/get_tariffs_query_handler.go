package queries

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetTariffsQueryHandler lists pricing tiers from the database.
type GetTariffsQueryHandler struct {
	db *gorm.DB
}

// NewGetTariffsQueryHandler creates a handler for tariff listings.
func NewGetTariffsQueryHandler(db *gorm.DB) GetTariffsQueryHandler {
	return GetTariffsQueryHandler{db: db}
}

// Handle returns tariffs ordered by base price ascending.
func (h GetTariffsQueryHandler) Handle(ctx context.Context,
	query GetTariffsQuery) ([]TariffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "1=1"
	if query.ActiveOnly() {
		where = "is_active"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			base_price,
			price_per_kg,
			price_per_km,
			price_per_m3,
			min_weight,
			max_weight,
			delivery_days_min,
			delivery_days_max,
			cargo_types,
			is_express,
			is_active
		FROM tariffs
		WHERE ` + where + `
		ORDER BY base_price ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tariffs := make([]TariffView, 0)
	for rows.Next() {
		var v TariffView
		var daysMin, daysMax int
		var cargoTypes pq.StringArray

		err = rows.Scan(
			&v.ID,
			&v.Name,
			&v.Description,
			&v.BasePrice,
			&v.PricePerKg,
			&v.PricePerKm,
			&v.PricePerM3,
			&v.MinWeight,
			&v.MaxWeight,
			&daysMin,
			&daysMax,
			&cargoTypes,
			&v.IsExpress,
			&v.IsActive,
		)
		if err != nil {
			return nil, err
		}

		v.DeliveryDays = fmt.Sprintf("%d-%d", daysMin, daysMax)
		v.CargoTypes = []string(cargoTypes)
		tariffs = append(tariffs, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tariffs, nil
}
