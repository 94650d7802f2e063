package tariffrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/tariff"
	"cargotrack/internal/pkg/errs"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB, tracker aggregateTracker) *GormTariffRepository {
	return &GormTariffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tariff to the database.
func (r *GormTariffRepository) Add(ctx context.Context, aggregate *tariff.Tariff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing tariff to the database.
func (r *GormTariffRepository) Update(ctx context.Context, aggregate *tariff.Tariff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TariffDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tariff by ID.
func (r *GormTariffRepository) Get(ctx context.Context, id kernel.UUID) (*tariff.Tariff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TariffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tariff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves active tariffs ordered by base price ascending.
func (r *GormTariffRepository) GetAllActive(ctx context.Context) ([]*tariff.Tariff, error) {
	var dtos []TariffDTO
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("base_price ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tariffs := make([]*tariff.Tariff, 0, len(dtos))
	for _, dto := range dtos {
		t, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		tariffs = append(tariffs, t)
	}

	return tariffs, nil
}
