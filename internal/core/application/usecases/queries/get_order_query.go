package queries

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery requests the full detail of one order.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for an order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// AddressView is one endpoint of the shipment.
type AddressView struct {
	City         string `json:"city"`
	Street       string `json:"street"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// GetOrderQueryResponse is the authenticated detail view of an order,
// including addresses and the full cost breakdown.
type GetOrderQueryResponse struct {
	ID               string            `json:"id"`
	Number           string            `json:"number"`
	TrackingCode     string            `json:"trackingCode"`
	ClientID         string            `json:"clientId"`
	TariffID         string            `json:"tariffId"`
	CargoDescription string            `json:"cargoDescription"`
	CargoType        string            `json:"cargoType"`
	WeightKg         float64           `json:"weightKg"`
	VolumeM3         float64           `json:"volumeM3"`
	DeclaredValue    float64           `json:"declaredValue"`
	PiecesCount      int               `json:"piecesCount"`
	Pickup           AddressView       `json:"pickup"`
	Delivery         AddressView       `json:"delivery"`
	Cost             CostBreakdownView `json:"cost"`
	Status           string            `json:"status"`
	PaymentStatus    string            `json:"paymentStatus"`
	CurrentLocation  string            `json:"currentLocation,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	DeliveredAt      *time.Time        `json:"deliveredAt,omitempty"`
}
