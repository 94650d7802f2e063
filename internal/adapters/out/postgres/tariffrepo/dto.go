// Package tariffrepo persists tariff aggregates. Accepted cargo types are
// stored as a postgres text array via pq.StringArray.
package tariffrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/tariff"
)

// TariffDTO is the database representation of a tariff aggregate.
type TariffDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:128"`
	Description string

	BasePrice  float64
	PricePerKg float64
	PricePerKm float64
	PricePerM3 float64

	MinWeight float64
	MaxWeight *float64

	DeliveryDaysMin int
	DeliveryDaysMax int

	CargoTypes pq.StringArray `gorm:"type:text[]"`
	IsExpress  bool
	IsActive   bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "tariffs".
func (TariffDTO) TableName() string {
	return "tariffs"
}

func fromDomain(t *tariff.Tariff) TariffDTO {
	cargoTypes := make(pq.StringArray, 0, len(t.CargoTypes()))
	for _, c := range t.CargoTypes() {
		cargoTypes = append(cargoTypes, c.String())
	}

	return TariffDTO{
		ID:              t.ID().Bytes(),
		Name:            t.Name(),
		Description:     t.Description(),
		BasePrice:       t.BasePrice(),
		PricePerKg:      t.PricePerKg(),
		PricePerKm:      t.PricePerKm(),
		PricePerM3:      t.PricePerM3(),
		MinWeight:       t.MinWeight(),
		MaxWeight:       t.MaxWeight(),
		DeliveryDaysMin: t.DeliveryDaysMin(),
		DeliveryDaysMax: t.DeliveryDaysMax(),
		CargoTypes:      cargoTypes,
		IsExpress:       t.IsExpress(),
		IsActive:        t.IsActive(),
	}
}

func toDomain(dto TariffDTO) (*tariff.Tariff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cargoTypes := make([]kernel.CargoType, 0, len(dto.CargoTypes))
	for _, c := range dto.CargoTypes {
		cargoTypes = append(cargoTypes, kernel.CargoType(c))
	}

	return tariff.RestoreTariff(tariff.NewTariffParams{
		ID:              id,
		Name:            dto.Name,
		Description:     dto.Description,
		BasePrice:       dto.BasePrice,
		PricePerKg:      dto.PricePerKg,
		PricePerKm:      dto.PricePerKm,
		PricePerM3:      dto.PricePerM3,
		MinWeight:       dto.MinWeight,
		MaxWeight:       dto.MaxWeight,
		DeliveryDaysMin: dto.DeliveryDaysMin,
		DeliveryDaysMax: dto.DeliveryDaysMax,
		CargoTypes:      cargoTypes,
		IsExpress:       dto.IsExpress,
	}, dto.IsActive)
}
