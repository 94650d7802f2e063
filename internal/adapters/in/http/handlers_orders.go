package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/currency"
	"cargotrack/internal/pkg/errs"
)

// OrderAddressRequest is one endpoint of the requested shipment.
type OrderAddressRequest struct {
	City         string `json:"city"`
	Street       string `json:"street"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// CreateOrderRequest is the order placement form. The client identity comes
// from the access token, never from the body.
type CreateOrderRequest struct {
	TariffID         string              `json:"tariffId"`
	CargoDescription string              `json:"cargoDescription"`
	CargoType        string              `json:"cargoType"`
	WeightKg         float64             `json:"weightKg"`
	LengthCm         float64             `json:"lengthCm"`
	WidthCm          float64             `json:"widthCm"`
	HeightCm         float64             `json:"heightCm"`
	DeclaredValue    float64             `json:"declaredValue"`
	PiecesCount      int                 `json:"piecesCount"`
	Pickup           OrderAddressRequest `json:"pickup"`
	Delivery         OrderAddressRequest `json:"delivery"`
}

// CreateOrderResponse returns the placed order's identifiers and price.
type CreateOrderResponse struct {
	OrderID      string  `json:"orderId"`
	Number       string  `json:"number"`
	TrackingCode string  `json:"trackingCode"`
	TotalCost    float64 `json:"totalCost"`
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated client.
func (s *Server) CreateOrder(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tariffID, err := kernel.UUIDFromString(req.TariffID)
	if err != nil {
		return badRequest(c, "Invalid tariff ID")
	}

	cmd, err := commands.NewCreateOrderCommand(commands.NewCreateOrderParams{
		ClientID:         principal.ProfileID,
		TariffID:         tariffID,
		CargoDescription: req.CargoDescription,
		CargoType:        kernel.CargoType(req.CargoType),
		WeightKg:         req.WeightKg,
		LengthCm:         req.LengthCm,
		WidthCm:          req.WidthCm,
		HeightCm:         req.HeightCm,
		DeclaredValue:    req.DeclaredValue,
		PiecesCount:      req.PiecesCount,
		Pickup:           addressFromRequest(req.Pickup),
		Delivery:         addressFromRequest(req.Delivery),
	})
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusCreated, CreateOrderResponse{
		OrderID:      result.OrderID.String(),
		Number:       result.Number.String(),
		TrackingCode: result.TrackingCode.String(),
		TotalCost:    currency.Round2(result.TotalCost),
	})
}

// GetOrders handles GET /api/v1/orders - pages through orders, newest first.
// Clients see only their own orders; staff may filter by any client.
func (s *Server) GetOrders(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	var clientID *kernel.UUID
	if principal.IsStaff() {
		if raw := c.QueryParam("clientId"); raw != "" {
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return badRequest(c, "Invalid client ID")
			}
			clientID = &id
		}
	} else {
		clientID = &principal.ProfileID
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(c, err)
		}
		status = &parsed
	}

	limit := intQueryParam(c, "limit", 0)
	offset := intQueryParam(c, "offset", 0)

	query, err := queries.NewGetOrdersQuery(clientID, status, limit, offset)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// GetOrder handles GET /api/v1/orders/:id - full order detail. Clients get 404
// for orders that are not theirs.
func (s *Server) GetOrder(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	resp, err := s.loadOwnedOrder(c, principal)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - the status audit
// trail, newest first. Same ownership rules as the detail view.
func (s *Server) GetOrderHistory(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	detail, err := s.loadOwnedOrder(c, principal)
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(detail.ID)
	if err != nil {
		return writeError(c, err)
	}
	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return writeError(c, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, history)
}

// loadOwnedOrder fetches the order detail and enforces that non-staff callers
// only reach their own orders. Foreign orders look like 404, not 403, so the
// API does not confirm their existence.
func (s *Server) loadOwnedOrder(c echo.Context,
	principal Principal) (queries.GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return queries.GetOrderQueryResponse{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	if !principal.IsStaff() && resp.ClientID != principal.ProfileID.String() {
		return queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	return resp, nil
}

func addressFromRequest(req OrderAddressRequest) commands.CreateOrderAddress {
	return commands.CreateOrderAddress{
		City:         req.City,
		Street:       req.Street,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	}
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
