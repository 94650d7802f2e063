package queries

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrCalculateDeliveryCostQueryIsNotConstructed = errors.New(
	"CalculateDeliveryCostQuery must be created via NewCalculateDeliveryCostQuery constructor",
)

// CalculateDeliveryCostQuery prices a prospective shipment against every
// active tariff. This is the public calculator: no order is created and
// nothing is persisted.
type CalculateDeliveryCostQuery struct {
	originCity      string
	destinationCity string
	weightKg        float64
	lengthCm        float64
	widthCm         float64
	heightCm        float64
	declaredValue   float64
	cargoType       kernel.CargoType

	guard guard.ConstructorGuard
}

// NewCalculateDeliveryCostParams carries the calculator's inputs.
// CargoType is optional; when empty, no tariff is filtered out by cargo type.
type NewCalculateDeliveryCostParams struct {
	OriginCity      string
	DestinationCity string
	WeightKg        float64
	LengthCm        float64
	WidthCm         float64
	HeightCm        float64
	DeclaredValue   float64
	CargoType       kernel.CargoType
}

// NewCalculateDeliveryCostQuery creates a calculator query.
func NewCalculateDeliveryCostQuery(p NewCalculateDeliveryCostParams) (CalculateDeliveryCostQuery, error) {
	if p.OriginCity == "" {
		return CalculateDeliveryCostQuery{}, errs.NewValueIsRequiredError("originCity")
	}
	if p.DestinationCity == "" {
		return CalculateDeliveryCostQuery{}, errs.NewValueIsRequiredError("destinationCity")
	}
	if p.WeightKg <= 0 {
		return CalculateDeliveryCostQuery{}, errs.NewValueIsInvalidError("weightKg")
	}
	if p.DeclaredValue < 0 {
		return CalculateDeliveryCostQuery{}, errs.NewValueIsInvalidError("declaredValue")
	}
	if p.CargoType != "" {
		if err := p.CargoType.Validate(); err != nil {
			return CalculateDeliveryCostQuery{}, err
		}
	}

	return CalculateDeliveryCostQuery{
		originCity:      p.OriginCity,
		destinationCity: p.DestinationCity,
		weightKg:        p.WeightKg,
		lengthCm:        p.LengthCm,
		widthCm:         p.WidthCm,
		heightCm:        p.HeightCm,
		declaredValue:   p.DeclaredValue,
		cargoType:       p.CargoType,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateDeliveryCostQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDeliveryCostQueryIsNotConstructed)
}

// OriginCity returns the departure city.
func (q CalculateDeliveryCostQuery) OriginCity() string { return q.originCity }

// DestinationCity returns the arrival city.
func (q CalculateDeliveryCostQuery) DestinationCity() string { return q.destinationCity }

// WeightKg returns the shipment weight.
func (q CalculateDeliveryCostQuery) WeightKg() float64 { return q.weightKg }

// Dimensions returns the package dimensions in centimeters.
func (q CalculateDeliveryCostQuery) Dimensions() (length, width, height float64) {
	return q.lengthCm, q.widthCm, q.heightCm
}

// DeclaredValue returns the declared cargo value.
func (q CalculateDeliveryCostQuery) DeclaredValue() float64 { return q.declaredValue }

// CargoType returns the optional cargo type filter.
func (q CalculateDeliveryCostQuery) CargoType() kernel.CargoType { return q.cargoType }

// CostBreakdownView itemizes one quote's cost.
type CostBreakdownView struct {
	Base          float64 `json:"base"`
	Weight        float64 `json:"weight"`
	Distance      float64 `json:"distance"`
	Volume        float64 `json:"volume"`
	Insurance     float64 `json:"insurance"`
	ExtraServices float64 `json:"extraServices"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}

// QuoteView is one priced delivery option.
type QuoteView struct {
	TariffID     string            `json:"tariffId"`
	TariffName   string            `json:"tariffName"`
	Cost         CostBreakdownView `json:"cost"`
	DeliveryDays string            `json:"deliveryDays"`
	IsExpress    bool              `json:"isExpress"`
}

// CalculateDeliveryCostQueryResponse carries every quote plus the distance
// they were priced with.
type CalculateDeliveryCostQueryResponse struct {
	DistanceKm   float64     `json:"distanceKm"`
	RouteMatched bool        `json:"routeMatched"`
	Quotes       []QuoteView `json:"quotes"`
}
