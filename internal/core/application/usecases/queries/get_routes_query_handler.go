package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRoutesQueryHandler lists delivery routes from the database.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route listings.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle returns routes ordered by origin, then destination city.
func (h GetRoutesQueryHandler) Handle(ctx context.Context,
	query GetRoutesQuery) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "1=1"
	if query.ActiveOnly() {
		where = "is_active"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, origin_city, destination_city, distance_km, estimated_hours, is_active
		FROM routes
		WHERE ` + where + `
		ORDER BY origin_city, destination_city
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteView, 0)
	for rows.Next() {
		var v RouteView
		err = rows.Scan(
			&v.ID,
			&v.Name,
			&v.OriginCity,
			&v.DestinationCity,
			&v.DistanceKm,
			&v.EstimatedHours,
			&v.IsActive,
		)
		if err != nil {
			return nil, err
		}
		routes = append(routes, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
