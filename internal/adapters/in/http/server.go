// Package http exposes the application over a REST API.
//
// Route groups:
//   - public: health, delivery calculator, tracking lookup, cities, tariffs
//   - auth: client registration and sign-in
//   - authenticated: order placement, own-order listing and detail, own profile
//   - staff: tariff/route management, status transitions, clients, dashboard stats
package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	verifier TokenVerifier

	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createTariffHandler      commands.CreateTariffCommandHandler
	updateTariffHandler      commands.UpdateTariffCommandHandler
	createRouteHandler       commands.CreateRouteCommandHandler
	registerClientHandler    commands.RegisterClientCommandHandler
	authenticateHandler      commands.AuthenticateCommandHandler
	updateProfileHandler     commands.UpdateProfileCommandHandler

	// Query handlers
	getOrderByTrackingCodeHandler queries.GetOrderByTrackingCodeQueryHandler
	getOrdersHandler              queries.GetOrdersQueryHandler
	getOrderHandler               queries.GetOrderQueryHandler
	getOrderHistoryHandler        queries.GetOrderHistoryQueryHandler
	getTariffsHandler             queries.GetTariffsQueryHandler
	getRoutesHandler              queries.GetRoutesQueryHandler
	getCitiesHandler              queries.GetCitiesQueryHandler
	calculateDeliveryCostHandler  queries.CalculateDeliveryCostQueryHandler
	getOrderStatsHandler          queries.GetOrderStatsQueryHandler
	getProfileHandler             queries.GetProfileQueryHandler
	getClientsHandler             queries.GetClientsQueryHandler
}

// ServerParams carries the handlers the server dispatches to.
type ServerParams struct {
	Verifier TokenVerifier

	CreateOrderHandler       commands.CreateOrderCommandHandler
	ChangeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	CreateTariffHandler      commands.CreateTariffCommandHandler
	UpdateTariffHandler      commands.UpdateTariffCommandHandler
	CreateRouteHandler       commands.CreateRouteCommandHandler
	RegisterClientHandler    commands.RegisterClientCommandHandler
	AuthenticateHandler      commands.AuthenticateCommandHandler
	UpdateProfileHandler     commands.UpdateProfileCommandHandler

	GetOrderByTrackingCodeHandler queries.GetOrderByTrackingCodeQueryHandler
	GetOrdersHandler              queries.GetOrdersQueryHandler
	GetOrderHandler               queries.GetOrderQueryHandler
	GetOrderHistoryHandler        queries.GetOrderHistoryQueryHandler
	GetTariffsHandler             queries.GetTariffsQueryHandler
	GetRoutesHandler              queries.GetRoutesQueryHandler
	GetCitiesHandler              queries.GetCitiesQueryHandler
	CalculateDeliveryCostHandler  queries.CalculateDeliveryCostQueryHandler
	GetOrderStatsHandler          queries.GetOrderStatsQueryHandler
	GetProfileHandler             queries.GetProfileQueryHandler
	GetClientsHandler             queries.GetClientsQueryHandler
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(p ServerParams) *Server {
	return &Server{
		verifier: p.Verifier,

		createOrderHandler:       p.CreateOrderHandler,
		changeOrderStatusHandler: p.ChangeOrderStatusHandler,
		createTariffHandler:      p.CreateTariffHandler,
		updateTariffHandler:      p.UpdateTariffHandler,
		createRouteHandler:       p.CreateRouteHandler,
		registerClientHandler:    p.RegisterClientHandler,
		authenticateHandler:      p.AuthenticateHandler,
		updateProfileHandler:     p.UpdateProfileHandler,

		getOrderByTrackingCodeHandler: p.GetOrderByTrackingCodeHandler,
		getOrdersHandler:              p.GetOrdersHandler,
		getOrderHandler:               p.GetOrderHandler,
		getOrderHistoryHandler:        p.GetOrderHistoryHandler,
		getTariffsHandler:             p.GetTariffsHandler,
		getRoutesHandler:              p.GetRoutesHandler,
		getCitiesHandler:              p.GetCitiesHandler,
		calculateDeliveryCostHandler:  p.CalculateDeliveryCostHandler,
		getOrderStatsHandler:          p.GetOrderStatsHandler,
		getProfileHandler:             p.GetProfileHandler,
		getClientsHandler:             p.GetClientsHandler,
	}
}

// RegisterRoutes mounts every route group on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	// Public: no authentication required.
	api.POST("/calculator/quotes", s.CalculateDeliveryCost)
	api.GET("/tracking/:code", s.TrackOrder)
	api.GET("/cities", s.GetCities)
	api.GET("/tariffs", s.GetTariffs)

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	// Authenticated: any signed-in profile.
	authed := api.Group("", AuthMiddleware(s.verifier))
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.GET("/orders/:id/history", s.GetOrderHistory)
	authed.GET("/profile", s.GetProfile)
	authed.PUT("/profile", s.UpdateProfile)

	// Staff: admin and manager roles.
	staff := api.Group("/admin", AuthMiddleware(s.verifier), StaffOnly())
	staff.POST("/tariffs", s.CreateTariff)
	staff.PUT("/tariffs/:id", s.UpdateTariff)
	staff.GET("/tariffs", s.GetAllTariffs)
	staff.POST("/routes", s.CreateRoute)
	staff.GET("/routes", s.GetAllRoutes)
	staff.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	staff.GET("/clients", s.GetClients)
	staff.GET("/stats", s.GetOrderStats)
}
