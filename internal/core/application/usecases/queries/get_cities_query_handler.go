package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCitiesQueryHandler lists distinct route cities.
type GetCitiesQueryHandler struct {
	db *gorm.DB
}

// NewGetCitiesQueryHandler creates a handler for city listings.
func NewGetCitiesQueryHandler(db *gorm.DB) GetCitiesQueryHandler {
	return GetCitiesQueryHandler{db: db}
}

// Handle returns the sorted distinct set of origin and destination cities of
// active routes.
func (h GetCitiesQueryHandler) Handle(ctx context.Context,
	query GetCitiesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT origin_city AS city FROM routes WHERE is_active
		UNION
		SELECT destination_city AS city FROM routes WHERE is_active
		ORDER BY city
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err = rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}
