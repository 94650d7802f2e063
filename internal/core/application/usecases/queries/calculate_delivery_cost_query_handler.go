package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/tariff"
	"cargotrack/internal/core/domain/services"
)

// CalculateDeliveryCostQueryHandler prices prospective shipments.
//
// The handler reads active tariffs and the route distance from the database,
// rebuilds tariff aggregates, and hands pricing to the domain service so the
// calculator and order creation always agree on the math.
type CalculateDeliveryCostQueryHandler struct {
	db                *gorm.DB
	pricing           services.PricingService
	defaultDistanceKm float64
}

// NewCalculateDeliveryCostQueryHandler creates a handler for the calculator.
// defaultDistanceKm is used when no active route connects the cities.
func NewCalculateDeliveryCostQueryHandler(db *gorm.DB, pricing services.PricingService,
	defaultDistanceKm float64) CalculateDeliveryCostQueryHandler {
	return CalculateDeliveryCostQueryHandler{
		db:                db,
		pricing:           pricing,
		defaultDistanceKm: defaultDistanceKm,
	}
}

// Handle returns one quote per active tariff that accepts the shipment.
func (h CalculateDeliveryCostQueryHandler) Handle(ctx context.Context,
	query CalculateDeliveryCostQuery) (CalculateDeliveryCostQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateDeliveryCostQueryResponse{}, err
	}

	resp := CalculateDeliveryCostQueryResponse{
		DistanceKm: h.defaultDistanceKm,
		Quotes:     make([]QuoteView, 0),
	}

	var distanceKm float64
	row := h.db.WithContext(ctx).Raw(`
		SELECT distance_km
		FROM routes
		WHERE is_active
		  AND origin_city = ?
		  AND destination_city = ?
	`, query.OriginCity(), query.DestinationCity()).Row()
	if err := row.Scan(&distanceKm); err == nil {
		resp.DistanceKm = distanceKm
		resp.RouteMatched = true
	}

	tariffs, err := h.loadActiveTariffs(ctx)
	if err != nil {
		return CalculateDeliveryCostQueryResponse{}, err
	}

	length, width, height := query.Dimensions()
	volumeM3 := services.VolumeFromDimensions(length, width, height)

	quotes, err := h.pricing.CalculateAll(tariffs, query.CargoType(),
		query.WeightKg(), resp.DistanceKm, volumeM3, query.DeclaredValue())
	if err != nil {
		return CalculateDeliveryCostQueryResponse{}, err
	}

	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, QuoteView{
			TariffID:   q.TariffID,
			TariffName: q.TariffName,
			Cost: CostBreakdownView{
				Base:          q.Cost.Base(),
				Weight:        q.Cost.Weight(),
				Distance:      q.Cost.Distance(),
				Volume:        q.Cost.Volume(),
				Insurance:     q.Cost.Insurance(),
				ExtraServices: q.Cost.ExtraServices(),
				Discount:      q.Cost.Discount(),
				Total:         q.Cost.Total(),
			},
			DeliveryDays: q.DeliveryDays,
			IsExpress:    q.IsExpress,
		})
	}

	return resp, nil
}

func (h CalculateDeliveryCostQueryHandler) loadActiveTariffs(
	ctx context.Context) ([]*tariff.Tariff, error) {
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
			is_express
		FROM tariffs
		WHERE is_active
		ORDER BY base_price ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tariffs := make([]*tariff.Tariff, 0)
	for rows.Next() {
		var (
			id         string
			params     tariff.NewTariffParams
			cargoTypes pq.StringArray
		)

		err = rows.Scan(
			&id,
			&params.Name,
			&params.Description,
			&params.BasePrice,
			&params.PricePerKg,
			&params.PricePerKm,
			&params.PricePerM3,
			&params.MinWeight,
			&params.MaxWeight,
			&params.DeliveryDaysMin,
			&params.DeliveryDaysMax,
			&cargoTypes,
			&params.IsExpress,
		)
		if err != nil {
			return nil, err
		}

		params.ID, err = kernel.UUIDFromString(id)
		if err != nil {
			return nil, err
		}
		for _, c := range cargoTypes {
			params.CargoTypes = append(params.CargoTypes, kernel.CargoType(c))
		}

		t, restoreErr := tariff.RestoreTariff(params, true)
		if restoreErr != nil {
			return nil, restoreErr
		}
		tariffs = append(tariffs, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tariffs, nil
}
