package commands_test

import (
	"context"
	"testing"
	"time"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(_ context.Context, _ string) (string, bool) { return "", false }
func (m *MockTrackingCache) Set(_ context.Context, _, _ string, _ time.Duration) {
}
func (m *MockTrackingCache) Invalidate(ctx context.Context, trackingCode string) {
	m.Called(ctx, trackingCode)
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	pickup, err := order.NewAddress("Москва", "Тверская 1", "Иван Петров", "+79990001122")
	require.NoError(t, err)
	delivery, err := order.NewAddress("Казань", "Баумана 5", "Анна Смирнова", "+79990003344")
	require.NoError(t, err)
	cost, err := order.NewCostBreakdown(800, 200, 4970, 0, 0, 0, 0)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:               kernel.NewUUID(),
		ClientID:         kernel.NewUUID(),
		TariffID:         kernel.NewUUID(),
		CargoDescription: "Коробки",
		CargoType:        kernel.CargoStandard,
		WeightKg:         10,
		PiecesCount:      1,
		Pickup:           pickup,
		Delivery:         delivery,
		Cost:             cost,
		CreatedAt:        time.Now(),
	})
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	o := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(
		o.ID(), order.StatusConfirmed, "", "Подтверждён менеджером", kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockTrackingCache)
	cache.On("Invalidate", mock.Anything, o.TrackingCode().String()).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, cache)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, o.Status())
	assert.Len(t, o.History(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	o := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(
		o.ID(), order.StatusDelivered, "", "", kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatusPending, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_NilCache(t *testing.T) {
	ctx := context.Background()
	o := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(
		o.ID(), order.StatusConfirmed, "", "", kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))
}
