package queries

import (
	"errors"

	"cargotrack/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery computes the dashboard aggregates: order totals by
// status and revenue figures. Cancelled orders never count toward revenue.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries the dashboard aggregates.
type GetOrderStatsQueryResponse struct {
	TotalOrders     int64            `json:"totalOrders"`
	OrdersByStatus  map[string]int64 `json:"ordersByStatus"`
	ActiveOrders    int64            `json:"activeOrders"`
	DeliveredOrders int64            `json:"deliveredOrders"`
	TotalRevenue    float64          `json:"totalRevenue"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
}
