package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's status history.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order's history rows ordered by creation time descending.
// An order without rows yields an empty slice, not an error; existence checks
// belong to the order detail endpoint.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context,
	query GetOrderHistoryQuery) ([]HistoryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, location, notes, created_by, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryRow, 0)
	for rows.Next() {
		var row HistoryRow
		if err = rows.Scan(&row.Status, &row.Location, &row.Notes, &row.CreatedBy, &row.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
