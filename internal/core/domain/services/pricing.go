package services

import (
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/model/tariff"
)

// InsuranceRate is the fraction of the declared value charged as insurance.
const InsuranceRate = 0.005

// Quote is a priced delivery option: the tariff it was computed from, the
// full cost breakdown, and the promised delivery window.
type Quote struct {
	TariffID     string
	TariffName   string
	Cost         order.CostBreakdown
	DeliveryDays string
	IsExpress    bool
}

// PricingService computes delivery cost quotes from tariff rates.
//
// The cost formula combines four metered components with an insurance charge:
//
//	total = base + weight*perKg + distance*perKm + volume*perM3 + declared*InsuranceRate
//
// Each component is kept separate in the breakdown so clients can show an
// itemized price. Quotes are frozen onto orders at creation: later tariff
// changes never reprice an existing order.
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// Calculate prices a shipment against a single tariff.
//
// weightKg, distanceKm, volumeM3 and declaredValue must be non-negative; the
// cost breakdown constructor rejects negative components.
func (s PricingService) Calculate(t *tariff.Tariff, weightKg, distanceKm, volumeM3,
	declaredValue float64) (Quote, error) {
	if err := t.Validate(); err != nil {
		return Quote{}, err
	}

	cost, err := order.NewCostBreakdown(
		t.BasePrice(),
		weightKg*t.PricePerKg(),
		distanceKm*t.PricePerKm(),
		volumeM3*t.PricePerM3(),
		declaredValue*InsuranceRate,
		0,
		0,
	)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		TariffID:     t.ID().String(),
		TariffName:   t.Name(),
		Cost:         cost,
		DeliveryDays: t.DeliveryDays(),
		IsExpress:    t.IsExpress(),
	}, nil
}

// CalculateAll prices a shipment against every given tariff, skipping tariffs
// that do not accept the shipment's weight or cargo type. The input order is
// preserved.
func (s PricingService) CalculateAll(tariffs []*tariff.Tariff, cargoType kernel.CargoType,
	weightKg, distanceKm, volumeM3, declaredValue float64) ([]Quote, error) {
	quotes := make([]Quote, 0, len(tariffs))
	for _, t := range tariffs {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !t.AcceptsWeight(weightKg) {
			continue
		}
		if cargoType != "" && !t.SupportsCargoType(cargoType) {
			continue
		}

		quote, err := s.Calculate(t, weightKg, distanceKm, volumeM3, declaredValue)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

// VolumeFromDimensions converts package dimensions in centimeters to cubic
// meters.
func VolumeFromDimensions(lengthCm, widthCm, heightCm float64) float64 {
	if lengthCm <= 0 || widthCm <= 0 || heightCm <= 0 {
		return 0
	}
	return lengthCm * widthCm * heightCm / 1_000_000
}
