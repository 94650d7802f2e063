package services_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/tariff"
	"cargotrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTariff(t *testing.T, name string, base, perKg, perKm, perM3 float64) *tariff.Tariff {
	t.Helper()
	tr, err := tariff.NewTariff(tariff.NewTariffParams{
		ID:              kernel.NewUUID(),
		Name:            name,
		BasePrice:       base,
		PricePerKg:      perKg,
		PricePerKm:      perKm,
		PricePerM3:      perM3,
		MinWeight:       0.1,
		DeliveryDaysMin: 3,
		DeliveryDaysMax: 7,
		CargoTypes:      []kernel.CargoType{kernel.CargoStandard},
	})
	require.NoError(t, err)
	return tr
}

func TestPricingService_Calculate(t *testing.T) {
	svc := services.NewPricingService()

	t.Run("should combine base, weight and distance components", func(t *testing.T) {
		tr := newTariff(t, "Стандартный", 800, 20, 7, 0)

		quote, err := svc.Calculate(tr, 10, 710, 0, 0)

		require.NoError(t, err)
		assert.InDelta(t, 800, quote.Cost.Base(), 1e-9)
		assert.InDelta(t, 200, quote.Cost.Weight(), 1e-9)
		assert.InDelta(t, 4970, quote.Cost.Distance(), 1e-9)
		assert.InDelta(t, 0, quote.Cost.Insurance(), 1e-9)
		assert.InDelta(t, 5970, quote.Cost.Total(), 1e-9)
		assert.Equal(t, "3-7", quote.DeliveryDays)
		assert.Equal(t, "Стандартный", quote.TariffName)
	})

	t.Run("should charge half a percent of the declared value as insurance", func(t *testing.T) {
		tr := newTariff(t, "Стандартный", 800, 20, 7, 0)

		quote, err := svc.Calculate(tr, 10, 710, 0, 50000)

		require.NoError(t, err)
		assert.InDelta(t, 250, quote.Cost.Insurance(), 1e-9)
		assert.InDelta(t, 6220, quote.Cost.Total(), 1e-9)
	})

	t.Run("should price volume per cubic meter", func(t *testing.T) {
		tr := newTariff(t, "Габаритный", 1000, 0, 0, 500)

		quote, err := svc.Calculate(tr, 10, 0, 2.5, 0)

		require.NoError(t, err)
		assert.InDelta(t, 1250, quote.Cost.Volume(), 1e-9)
		assert.InDelta(t, 2250, quote.Cost.Total(), 1e-9)
	})

	t.Run("should reject an unconstructed tariff", func(t *testing.T) {
		var tr tariff.Tariff

		_, err := svc.Calculate(&tr, 10, 100, 0, 0)

		require.ErrorIs(t, err, tariff.ErrTariffIsNotConstructed)
	})
}

func TestPricingService_CalculateAll(t *testing.T) {
	svc := services.NewPricingService()

	t.Run("should produce one quote per eligible tariff", func(t *testing.T) {
		economy := newTariff(t, "Эконом", 500, 10, 5, 0)
		express := newTariff(t, "Экспресс", 2000, 40, 14, 0)

		quotes, err := svc.CalculateAll(
			[]*tariff.Tariff{economy, express}, kernel.CargoStandard, 10, 100, 0, 0)

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.InDelta(t, 1100, quotes[0].Cost.Total(), 1e-9)
		assert.InDelta(t, 3800, quotes[1].Cost.Total(), 1e-9)
	})

	t.Run("should skip tariffs outside the weight bounds", func(t *testing.T) {
		light, err := tariff.NewTariff(tariff.NewTariffParams{
			ID:              kernel.NewUUID(),
			Name:            "Документы",
			BasePrice:       300,
			MinWeight:       0.1,
			MaxWeight:       func() *float64 { v := 2.0; return &v }(),
			DeliveryDaysMin: 1,
			DeliveryDaysMax: 2,
			CargoTypes:      []kernel.CargoType{kernel.CargoStandard},
		})
		require.NoError(t, err)

		quotes, err := svc.CalculateAll([]*tariff.Tariff{light}, kernel.CargoStandard, 10, 100, 0, 0)

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("should skip tariffs that do not carry the cargo type", func(t *testing.T) {
		standardOnly := newTariff(t, "Стандартный", 800, 20, 7, 0)

		quotes, err := svc.CalculateAll(
			[]*tariff.Tariff{standardOnly}, kernel.CargoHazardous, 10, 100, 0, 0)

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})
}

func TestVolumeFromDimensions(t *testing.T) {
	t.Run("should convert centimeters to cubic meters", func(t *testing.T) {
		assert.InDelta(t, 0.125, services.VolumeFromDimensions(50, 50, 50), 1e-9)
		assert.InDelta(t, 1, services.VolumeFromDimensions(100, 100, 100), 1e-9)
	})

	t.Run("should return zero for missing dimensions", func(t *testing.T) {
		assert.Zero(t, services.VolumeFromDimensions(0, 50, 50))
		assert.Zero(t, services.VolumeFromDimensions(50, -1, 50))
	})
}
