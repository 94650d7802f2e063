package order_test

import (
	"testing"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, city string) order.Address {
	t.Helper()
	addr, err := order.NewAddress(city, "Тверская 1", "Иван Петров", "+79990001122")
	require.NoError(t, err)
	return addr
}

func mustCost(t *testing.T) order.CostBreakdown {
	t.Helper()
	cost, err := order.NewCostBreakdown(800, 200, 4970, 0, 0, 0, 0)
	require.NoError(t, err)
	return cost
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.NewOrderParams{
		ID:               kernel.NewUUID(),
		ClientID:         kernel.NewUUID(),
		TariffID:         kernel.NewUUID(),
		CargoDescription: "Коробки с документами",
		CargoType:        kernel.CargoStandard,
		WeightKg:         10,
		VolumeM3:         0,
		DeclaredValue:    0,
		PiecesCount:      1,
		Pickup:           mustAddress(t, "Москва"),
		Delivery:         mustAddress(t, "Санкт-Петербург"),
		Cost:             mustCost(t),
		CreatedAt:        time.Now(),
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with generated identifiers", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		require.NoError(t, o.Number().Validate())
		require.NoError(t, o.TrackingCode().Validate())
		assert.Equal(t, "Москва", o.CurrentLocation())
	})

	t.Run("should seed history with the initial pending entry", func(t *testing.T) {
		o := newTestOrder(t)

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.StatusPending, history[0].Status())
		assert.Equal(t, "Москва", history[0].Location())
		assert.Nil(t, history[0].CreatedBy())
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		_, err := order.NewOrder(order.NewOrderParams{
			ID:               kernel.NewUUID(),
			ClientID:         kernel.NewUUID(),
			TariffID:         kernel.NewUUID(),
			CargoDescription: "Коробки",
			CargoType:        kernel.CargoStandard,
			WeightKg:         0,
			PiecesCount:      1,
			Pickup:           mustAddress(t, "Москва"),
			Delivery:         mustAddress(t, "Казань"),
			Cost:             mustCost(t),
			CreatedAt:        time.Now(),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weightKg")
	})

	t.Run("should reject invalid cargo type", func(t *testing.T) {
		_, err := order.NewOrder(order.NewOrderParams{
			ID:               kernel.NewUUID(),
			ClientID:         kernel.NewUUID(),
			TariffID:         kernel.NewUUID(),
			CargoDescription: "Коробки",
			CargoType:        kernel.CargoType("liquid"),
			WeightKg:         5,
			PiecesCount:      1,
			Pickup:           mustAddress(t, "Москва"),
			Delivery:         mustAddress(t, "Казань"),
			Cost:             mustCost(t),
			CreatedAt:        time.Now(),
		})

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should walk the full lifecycle appending one history row per step", func(t *testing.T) {
		o := newTestOrder(t)
		now := time.Now()

		steps := []order.Status{
			order.StatusConfirmed,
			order.StatusPickup,
			order.StatusInTransit,
			order.StatusDelivered,
		}

		for i, status := range steps {
			err := o.TransitionTo(status, "Склад", "", &actor, now.Add(time.Duration(i+1)*time.Hour))
			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
		}

		history := o.History()
		require.Len(t, history, 5) // initial pending + 4 transitions
		for i := 1; i < len(history); i++ {
			assert.Equal(t, steps[i-1], history[i].Status())
			assert.False(t, history[i].CreatedAt().Before(history[i-1].CreatedAt()),
				"history must be ordered by creation time")
		}
		assert.NotNil(t, o.ConfirmedAt())
		assert.NotNil(t, o.PickedUpAt())
		assert.NotNil(t, o.DeliveredAt())
	})

	t.Run("should reject jumping from pending straight to delivered", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(order.StatusDelivered, "", "", &actor, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.History(), 1, "failed transition must not append history")
	})

	t.Run("should allow cancellation from any non-terminal state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusConfirmed, "", "", &actor, time.Now()))

		err := o.TransitionTo(order.StatusCancelled, "", "Клиент передумал", &actor, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "Клиент передумал", o.CancellationReason())
		assert.NotNil(t, o.CancelledAt())
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusCancelled, "", "", &actor, time.Now()))

		err := o.TransitionTo(order.StatusConfirmed, "", "", &actor, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should update current location only when provided", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusConfirmed, "", "", &actor, time.Now()))
		assert.Equal(t, "Москва", o.CurrentLocation())

		require.NoError(t, o.TransitionTo(order.StatusPickup, "Склад Тверь", "", &actor, time.Now()))
		assert.Equal(t, "Склад Тверь", o.CurrentLocation())
	})

	t.Run("should clamp history timestamps against clock skew", func(t *testing.T) {
		o := newTestOrder(t)
		created := o.History()[0].CreatedAt()

		err := o.TransitionTo(order.StatusConfirmed, "", "", &actor, created.Add(-time.Hour))

		require.NoError(t, err)
		history := o.History()
		assert.False(t, history[1].CreatedAt().Before(history[0].CreatedAt()))
	})
}

func TestRestoreOrder(t *testing.T) {
	restoreParams := func(t *testing.T, o *order.Order) order.RestoreOrderParams {
		t.Helper()
		return order.RestoreOrderParams{
			ID:               o.ID(),
			Number:           o.Number(),
			TrackingCode:     o.TrackingCode(),
			ClientID:         o.ClientID(),
			TariffID:         o.TariffID(),
			CargoDescription: o.CargoDescription(),
			CargoType:        o.CargoType(),
			WeightKg:         o.WeightKg(),
			PiecesCount:      o.PiecesCount(),
			Pickup:           o.Pickup(),
			Delivery:         o.Delivery(),
			Cost:             o.Cost(),
			Status:           o.Status(),
			PaymentStatus:    o.PaymentStatus(),
			CurrentLocation:  o.CurrentLocation(),
			CreatedAt:        o.CreatedAt(),
			History:          o.History(),
		}
	}

	t.Run("should rebuild an order from persisted state", func(t *testing.T) {
		o := newTestOrder(t)
		actor := kernel.NewUUID()
		require.NoError(t, o.TransitionTo(order.StatusConfirmed, "", "", &actor, time.Now()))

		restored, err := order.RestoreOrder(restoreParams(t, o))

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, order.StatusConfirmed, restored.Status())
		assert.Len(t, restored.History(), 2)
	})

	t.Run("should reject history that skips lifecycle steps", func(t *testing.T) {
		o := newTestOrder(t)
		params := restoreParams(t, o)

		skipped, err := order.NewHistoryEntry(order.StatusDelivered, "", "", nil, time.Now())
		require.NoError(t, err)
		params.History = append(params.History, skipped)
		params.Status = order.StatusDelivered

		_, err = order.RestoreOrder(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrHistoryIsCorrupted)
	})

	t.Run("should reject history whose last entry disagrees with the status", func(t *testing.T) {
		o := newTestOrder(t)
		params := restoreParams(t, o)
		params.Status = order.StatusConfirmed

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrHistoryIsCorrupted)
	})

	t.Run("should reject empty history", func(t *testing.T) {
		o := newTestOrder(t)
		params := restoreParams(t, o)
		params.History = nil

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrHistoryIsCorrupted)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
