package cmd

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "cargotrack/internal/adapters/in/http"
	"cargotrack/internal/adapters/out/postgres"
	redisout "cargotrack/internal/adapters/out/redis"
	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/services"
	"cargotrack/internal/core/ports"
	"cargotrack/internal/jobs"
	"cargotrack/internal/pkg/token"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	configs Config

	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	trackingCache ports.TrackingCache
	tokenManager  *token.JWTManager
	logger        *slog.Logger
}

// NewCompositionRoot builds the application graph from its infrastructure.
func NewCompositionRoot(configs Config, gormDB *gorm.DB,
	redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:       configs,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		trackingCache: redisout.NewTrackingCache(redisClient, logger),
		tokenManager: token.NewJWTManager(configs.JWTSecret,
			time.Duration(configs.JWTTTLHours)*time.Hour),
		logger: logger,
	}
}

// TokenManager returns the shared JWT signer/verifier.
func (c *CompositionRoot) TokenManager() *token.JWTManager {
	return c.tokenManager
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.PricingService{}, c.configs.DefaultDistanceKm)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.trackingCache)
}

func (c *CompositionRoot) CreateCreateTariffCommandHandler() commands.CreateTariffCommandHandler {
	return commands.NewCreateTariffCommandHandler(c.tariffUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTariffCommandHandler() commands.UpdateTariffCommandHandler {
	return commands.NewUpdateTariffCommandHandler(c.tariffUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(c.profileUoWFactory(), c.tokenManager)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderByTrackingCodeQueryHandler() queries.GetOrderByTrackingCodeQueryHandler {
	return queries.NewGetOrderByTrackingCodeQueryHandler(c.gormDB, c.trackingCache)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTariffsQueryHandler() queries.GetTariffsQueryHandler {
	return queries.NewGetTariffsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCitiesQueryHandler() queries.GetCitiesQueryHandler {
	return queries.NewGetCitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateDeliveryCostQueryHandler() queries.CalculateDeliveryCostQueryHandler {
	return queries.NewCalculateDeliveryCostQueryHandler(c.gormDB,
		services.PricingService{}, c.configs.DefaultDistanceKm)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientsQueryHandler() queries.GetClientsQueryHandler {
	return queries.NewGetClientsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server from the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerParams{
		Verifier: c.tokenManager,

		CreateOrderHandler:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatusHandler: c.CreateChangeOrderStatusCommandHandler(),
		CreateTariffHandler:      c.CreateCreateTariffCommandHandler(),
		UpdateTariffHandler:      c.CreateUpdateTariffCommandHandler(),
		CreateRouteHandler:       c.CreateCreateRouteCommandHandler(),
		RegisterClientHandler:    c.CreateRegisterClientCommandHandler(),
		AuthenticateHandler:      c.CreateAuthenticateCommandHandler(),
		UpdateProfileHandler:     c.CreateUpdateProfileCommandHandler(),

		GetOrderByTrackingCodeHandler: c.CreateGetOrderByTrackingCodeQueryHandler(),
		GetOrdersHandler:              c.CreateGetOrdersQueryHandler(),
		GetOrderHandler:               c.CreateGetOrderQueryHandler(),
		GetOrderHistoryHandler:        c.CreateGetOrderHistoryQueryHandler(),
		GetTariffsHandler:             c.CreateGetTariffsQueryHandler(),
		GetRoutesHandler:              c.CreateGetRoutesQueryHandler(),
		GetCitiesHandler:              c.CreateGetCitiesQueryHandler(),
		CalculateDeliveryCostHandler:  c.CreateCalculateDeliveryCostQueryHandler(),
		GetOrderStatsHandler:          c.CreateGetOrderStatsQueryHandler(),
		GetProfileHandler:             c.CreateGetProfileQueryHandler(),
		GetClientsHandler:             c.CreateGetClientsQueryHandler(),
	})
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderStatsQueryHandler(), c.logger)
}

func (c *CompositionRoot) tariffUoWFactory() commands.TariffUoWFactory {
	return FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
