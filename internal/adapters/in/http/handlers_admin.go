package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// TariffRequest carries the full attribute set of a pricing tier.
type TariffRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	BasePrice       float64  `json:"basePrice"`
	PricePerKg      float64  `json:"pricePerKg"`
	PricePerKm      float64  `json:"pricePerKm"`
	PricePerM3      float64  `json:"pricePerM3"`
	MinWeight       float64  `json:"minWeight"`
	MaxWeight       *float64 `json:"maxWeight"`
	DeliveryDaysMin int      `json:"deliveryDaysMin"`
	DeliveryDaysMax int      `json:"deliveryDaysMax"`
	CargoTypes      []string `json:"cargoTypes"`
	IsExpress       bool     `json:"isExpress"`
	IsActive        *bool    `json:"isActive"`
}

// RouteRequest carries a new route's attributes.
type RouteRequest struct {
	Name            string   `json:"name"`
	OriginCity      string   `json:"originCity"`
	DestinationCity string   `json:"destinationCity"`
	DistanceKm      float64  `json:"distanceKm"`
	EstimatedHours  *float64 `json:"estimatedHours"`
}

// ChangeOrderStatusRequest moves an order through its lifecycle.
type ChangeOrderStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// CreatedResponse returns the identifier of a newly created object.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateTariff handles POST /api/v1/admin/tariffs.
func (s *Server) CreateTariff(c echo.Context) error {
	var req TariffRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateTariffCommand(tariffAttributes(req))
	if err != nil {
		return writeError(c, err)
	}

	tariffID, err := s.createTariffHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusCreated, CreatedResponse{ID: tariffID.String()})
}

// UpdateTariff handles PUT /api/v1/admin/tariffs/:id - replaces the tariff's
// attributes. Setting isActive to false retires the tariff without breaking
// orders that reference it.
func (s *Server) UpdateTariff(c echo.Context) error {
	tariffID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid tariff ID")
	}

	var req TariffRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	cmd, err := commands.NewUpdateTariffCommand(tariffID, tariffAttributes(req), isActive)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateTariffHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// GetAllTariffs handles GET /api/v1/admin/tariffs - includes retired tariffs.
func (s *Server) GetAllTariffs(c echo.Context) error {
	tariffs, err := s.getTariffsHandler.Handle(c.Request().Context(),
		queries.NewGetTariffsQuery(false))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, tariffs)
}

// CreateRoute handles POST /api/v1/admin/routes.
func (s *Server) CreateRoute(c echo.Context) error {
	var req RouteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateRouteCommand(req.Name, req.OriginCity,
		req.DestinationCity, req.DistanceKm, req.EstimatedHours)
	if err != nil {
		return writeError(c, err)
	}

	routeID, err := s.createRouteHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusCreated, CreatedResponse{ID: routeID.String()})
}

// GetAllRoutes handles GET /api/v1/admin/routes - includes inactive routes.
func (s *Server) GetAllRoutes(c echo.Context) error {
	routes, err := s.getRoutesHandler.Handle(c.Request().Context(),
		queries.NewGetRoutesQuery(false))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, routes)
}

// ChangeOrderStatus handles PATCH /api/v1/admin/orders/:id/status - moves the
// order along its lifecycle and records the acting staff member.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	var req ChangeOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus,
		req.Location, req.Notes, principal.ProfileID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

// GetOrderStats handles GET /api/v1/admin/stats - dashboard aggregates.
func (s *Server) GetOrderStats(c echo.Context) error {
	stats, err := s.getOrderStatsHandler.Handle(c.Request().Context(),
		queries.NewGetOrderStatsQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, stats)
}

func tariffAttributes(req TariffRequest) commands.TariffAttributes {
	cargoTypes := make([]kernel.CargoType, 0, len(req.CargoTypes))
	for _, raw := range req.CargoTypes {
		cargoTypes = append(cargoTypes, kernel.CargoType(raw))
	}

	return commands.TariffAttributes{
		Name:            req.Name,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		PricePerKg:      req.PricePerKg,
		PricePerKm:      req.PricePerKm,
		PricePerM3:      req.PricePerM3,
		MinWeight:       req.MinWeight,
		MaxWeight:       req.MaxWeight,
		DeliveryDaysMin: req.DeliveryDaysMin,
		DeliveryDaysMax: req.DeliveryDaysMax,
		CargoTypes:      cargoTypes,
		IsExpress:       req.IsExpress,
	}
}
