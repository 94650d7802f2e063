package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/kernel"
)

// CalculateDeliveryCostRequest is the calculator's input form.
type CalculateDeliveryCostRequest struct {
	OriginCity      string  `json:"originCity"`
	DestinationCity string  `json:"destinationCity"`
	WeightKg        float64 `json:"weightKg"`
	LengthCm        float64 `json:"lengthCm"`
	WidthCm         float64 `json:"widthCm"`
	HeightCm        float64 `json:"heightCm"`
	DeclaredValue   float64 `json:"declaredValue"`
	CargoType       string  `json:"cargoType"`
}

// CalculateDeliveryCost handles POST /api/v1/calculator/quotes - prices the
// shipment against every matching active tariff.
func (s *Server) CalculateDeliveryCost(c echo.Context) error {
	var req CalculateDeliveryCostRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	query, err := queries.NewCalculateDeliveryCostQuery(queries.NewCalculateDeliveryCostParams{
		OriginCity:      req.OriginCity,
		DestinationCity: req.DestinationCity,
		WeightKg:        req.WeightKg,
		LengthCm:        req.LengthCm,
		WidthCm:         req.WidthCm,
		HeightCm:        req.HeightCm,
		DeclaredValue:   req.DeclaredValue,
		CargoType:       kernel.CargoType(req.CargoType),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.calculateDeliveryCostHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// TrackOrder handles GET /api/v1/tracking/:code - public tracking lookup.
// The code is matched case-insensitively.
func (s *Server) TrackOrder(c echo.Context) error {
	query, err := queries.NewGetOrderByTrackingCodeQuery(c.Param("code"))
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getOrderByTrackingCodeHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// GetCities handles GET /api/v1/cities - lists cities served by active routes.
func (s *Server) GetCities(c echo.Context) error {
	cities, err := s.getCitiesHandler.Handle(c.Request().Context(), queries.NewGetCitiesQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, cities)
}

// GetTariffs handles GET /api/v1/tariffs - lists active tariffs, cheapest first.
func (s *Server) GetTariffs(c echo.Context) error {
	tariffs, err := s.getTariffsHandler.Handle(c.Request().Context(),
		queries.NewGetTariffsQuery(true))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, tariffs)
}
