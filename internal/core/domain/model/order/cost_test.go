package order_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCostBreakdown(t *testing.T) {
	t.Run("should derive the total from components", func(t *testing.T) {
		cost, err := order.NewCostBreakdown(800, 200, 4970, 0, 0, 0, 0)

		require.NoError(t, err)
		assert.InDelta(t, 5970, cost.Total(), 1e-9)
		assert.InDelta(t, 800, cost.Base(), 1e-9)
		assert.InDelta(t, 200, cost.Weight(), 1e-9)
		assert.InDelta(t, 4970, cost.Distance(), 1e-9)
	})

	t.Run("should subtract discounts", func(t *testing.T) {
		cost, err := order.NewCostBreakdown(1000, 0, 0, 0, 0, 300, 500)

		require.NoError(t, err)
		assert.InDelta(t, 800, cost.Total(), 1e-9)
	})

	t.Run("should reject negative components", func(t *testing.T) {
		_, err := order.NewCostBreakdown(-1, 0, 0, 0, 0, 0, 0)
		require.Error(t, err)

		_, err = order.NewCostBreakdown(0, 0, 0, 0, -10, 0, 0)
		require.Error(t, err)
	})

	t.Run("should reject discounts exceeding the sum", func(t *testing.T) {
		_, err := order.NewCostBreakdown(100, 0, 0, 0, 0, 0, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalCost")
	})
}

func TestRestoreCostBreakdown(t *testing.T) {
	t.Run("should accept a consistent stored total", func(t *testing.T) {
		cost, err := order.RestoreCostBreakdown(800, 200, 4970, 0, 250, 0, 0, 6220)

		require.NoError(t, err)
		assert.InDelta(t, 6220, cost.Total(), 1e-9)
		assert.InDelta(t, 250, cost.Insurance(), 1e-9)
	})

	t.Run("should reject a total that does not match the components", func(t *testing.T) {
		_, err := order.RestoreCostBreakdown(800, 200, 4970, 0, 0, 0, 0, 9999)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})
}

func TestCostBreakdown_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var cost order.CostBreakdown

		require.ErrorIs(t, cost.Validate(), order.ErrCostBreakdownIsNotConstructed)
	})
}
