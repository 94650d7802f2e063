package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "cargotrack/internal/adapters/out/postgres"
	"cargotrack/internal/adapters/out/postgres/orderrepo"
	"cargotrack/internal/adapters/out/postgres/profilerepo"
	"cargotrack/internal/adapters/out/postgres/routerepo"
	"cargotrack/internal/adapters/out/postgres/tariffrepo"
	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/model/route"
	"cargotrack/internal/core/domain/model/tariff"
	"cargotrack/internal/core/ports"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&tariffrepo.TariffDTO{},
		&routerepo.RouteDTO{},
		&profilerepo.ProfileDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_status_history, tariffs, routes, profiles").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	pickup, err := order.NewAddress("Москва", "Тверская 1", "Иван Петров", "+79990001122")
	suite.Require().NoError(err)
	delivery, err := order.NewAddress("Санкт-Петербург", "Невский 10", "Анна Смирнова", "+79990003344")
	suite.Require().NoError(err)
	cost, err := order.NewCostBreakdown(800, 200, 4970, 0, 0, 0, 0)
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:               kernel.NewUUID(),
		ClientID:         kernel.NewUUID(),
		TariffID:         kernel.NewUUID(),
		CargoDescription: "Коробки с документами",
		CargoType:        kernel.CargoStandard,
		WeightKg:         10,
		PiecesCount:      1,
		Pickup:           pickup,
		Delivery:         delivery,
		Cost:             cost,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.TariffRepository())
	suite.NotNil(uow2.RouteRepository())
	suite.NotNil(uow2.ProfileRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Error(uow.Commit(ctx), "Commit without active transaction should fail")
	suite.Error(uow.Rollback(ctx), "Rollback without active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrderWithHistory() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(o))
	suite.Equal(order.StatusPending, restored.Status())
	suite.Len(restored.History(), 1, "initial pending entry must be persisted")
	suite.Equal(o.TrackingCode().String(), restored.TrackingCode().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var historyCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.HistoryDTO{}).Count(&historyCount).Error)
	suite.Zero(historyCount, "rolled back history rows must not leak")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChangeAppendsHistoryAtomically() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	actor := kernel.NewUUID()
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()

	loaded, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.TransitionTo(
		order.StatusConfirmed, "", "Подтверждён", &actor, time.Now().UTC()))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, restored.Status())
	suite.Require().Len(restored.History(), 2)
	suite.Equal(order.StatusConfirmed, restored.History()[1].Status())
	suite.Require().NotNil(restored.History()[1].CreatedBy())
	suite.True(restored.History()[1].CreatedBy().IsEqual(actor))
	suite.NotNil(restored.ConfirmedAt())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetByTrackingCode() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().
		GetByTrackingCode(ctx, o.TrackingCode())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TariffRoundTrip() {
	ctx := context.Background()
	maxWeight := 50000.0
	t, err := tariff.NewTariff(tariff.NewTariffParams{
		ID:              kernel.NewUUID(),
		Name:            "Стандартный",
		Description:     "Обычная доставка",
		BasePrice:       800,
		PricePerKg:      20,
		PricePerKm:      7,
		MinWeight:       0.1,
		MaxWeight:       &maxWeight,
		DeliveryDaysMin: 3,
		DeliveryDaysMax: 7,
		CargoTypes:      []kernel.CargoType{kernel.CargoStandard, kernel.CargoFragile},
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TariffRepository().Add(ctx, t))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().TariffRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(t))
	suite.ElementsMatch(t.CargoTypes(), restored.CargoTypes())
	suite.Require().NotNil(restored.MaxWeight())
	suite.InDelta(50000, *restored.MaxWeight(), 1e-9)

	active, err := suite.factory.Create().TariffRepository().GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(active, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RouteFindByCities() {
	ctx := context.Background()
	r, err := route.NewRoute(kernel.NewUUID(), "", "Москва", "Санкт-Петербург", 710, nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RouteRepository().Add(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().RouteRepository()

	found, err := repo.FindByCities(ctx, "Москва", "Санкт-Петербург")
	suite.Require().NoError(err)
	suite.True(found.IsEqual(r))

	_, err = repo.FindByCities(ctx, "москва", "САНКТ-ПЕТЕРБУРГ")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound,
		"city names match exactly, case included")

	_, err = repo.FindByCities(ctx, "Санкт-Петербург", "Москва")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "routes are directional")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ProfileGetByEmail() {
	ctx := context.Background()
	p, err := account.NewProfile(account.NewProfileParams{
		ID:           kernel.NewUUID(),
		Email:        "ivan@example.com",
		FullName:     "Иван Петров",
		Role:         account.RoleClient,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ProfileRepository().
		GetByEmail(ctx, " Ivan@Example.COM ")
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(p))
	suite.Equal(account.RoleClient, restored.Role())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ProfileUpdateContact() {
	ctx := context.Background()
	p, err := account.NewProfile(account.NewProfileParams{
		ID:           kernel.NewUUID(),
		Email:        "ivan@example.com",
		FullName:     "Иван Петров",
		Role:         account.RoleClient,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(p.UpdateContact("Иван Сидоров", "+79995556677", "ООО Ромашка"))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Update(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ProfileRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Иван Сидоров", restored.FullName())
	suite.Equal("+79995556677", restored.Phone())
	suite.Equal("ООО Ромашка", restored.CompanyName())
	suite.Equal("ivan@example.com", restored.Email(), "email is not editable via contact update")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
