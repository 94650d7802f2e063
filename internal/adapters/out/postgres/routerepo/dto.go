// Package routerepo persists route aggregates.
package routerepo

import (
	"github.com/google/uuid"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/route"
)

// RouteDTO is the database representation of a route aggregate.
type RouteDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:256"`
	OriginCity      string    `gorm:"size:128;index:idx_route_cities"`
	DestinationCity string    `gorm:"size:128;index:idx_route_cities"`
	DistanceKm      float64
	EstimatedHours  *float64
	IsActive        bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:              r.ID().Bytes(),
		Name:            r.Name(),
		OriginCity:      r.OriginCity(),
		DestinationCity: r.DestinationCity(),
		DistanceKm:      r.DistanceKm(),
		EstimatedHours:  r.EstimatedHours(),
		IsActive:        r.IsActive(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.Name, dto.OriginCity, dto.DestinationCity,
		dto.DistanceKm, dto.EstimatedHours, dto.IsActive)
}
