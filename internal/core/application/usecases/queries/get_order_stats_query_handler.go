package queries

import (
	"context"

	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/order"
)

// GetOrderStatsQueryHandler computes dashboard aggregates.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for dashboard stats.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle returns order counts by status plus total and current-month revenue.
// Revenue sums total_cost over non-cancelled orders; monthly revenue is
// bounded by date_trunc on the database clock.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context,
	query GetOrderStatsQuery) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{
		OrdersByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}
		resp.OrdersByStatus[status] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp.DeliveredOrders = resp.OrdersByStatus[order.StatusDelivered.String()]
	resp.ActiveOrders = resp.TotalOrders - resp.DeliveredOrders -
		resp.OrdersByStatus[order.StatusCancelled.String()]

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_cost), 0),
			COALESCE(SUM(total_cost) FILTER (
				WHERE created_at >= date_trunc('month', now())
			), 0)
		FROM orders
		WHERE status != ?
	`, order.StatusCancelled.String()).Row()
	if err = row.Scan(&resp.TotalRevenue, &resp.MonthlyRevenue); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
