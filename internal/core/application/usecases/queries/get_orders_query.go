package queries

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/guard"
)

const (
	// DefaultPageSize is used when the caller does not specify a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the page size regardless of what the caller asks for.
	MaxPageSize = 100
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, newest first, with optional filters.
// ClientID narrows the listing to one client's orders; handlers for client
// endpoints always set it from the authenticated principal.
type GetOrdersQuery struct {
	clientID *kernel.UUID
	status   *order.Status
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query.
// A nil clientID lists all orders (staff view); a nil status skips the status
// filter. limit is clamped to [1, MaxPageSize], non-positive values fall back
// to DefaultPageSize. Negative offsets are treated as zero.
func NewGetOrdersQuery(clientID *kernel.UUID, status *order.Status,
	limit, offset int) (GetOrdersQuery, error) {
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return GetOrdersQuery{
		clientID: clientID,
		status:   status,
		limit:    limit,
		offset:   offset,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ClientID returns the optional client filter.
func (q GetOrdersQuery) ClientID() *kernel.UUID { return q.clientID }

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// Limit returns the clamped page size.
func (q GetOrdersQuery) Limit() int { return q.limit }

// Offset returns the listing offset.
func (q GetOrdersQuery) Offset() int { return q.offset }

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID              string     `json:"id"`
	Number          string     `json:"number"`
	TrackingCode    string     `json:"trackingCode"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	OriginCity      string     `json:"originCity"`
	DestinationCity string     `json:"destinationCity"`
	CargoType       string     `json:"cargoType"`
	WeightKg        float64    `json:"weightKg"`
	TotalCost       float64    `json:"totalCost"`
	CreatedAt       time.Time  `json:"createdAt"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
}

// GetOrdersQueryResponse is a page of the order listing.
type GetOrdersQueryResponse struct {
	Orders []OrderSummary `json:"orders"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
