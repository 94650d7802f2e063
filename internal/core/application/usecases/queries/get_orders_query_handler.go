package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing with the query's filters and pagination.
func (h GetOrdersQueryHandler) Handle(ctx context.Context,
	query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)
	if clientID := query.ClientID(); clientID != nil {
		where += " AND client_id = ?"
		args = append(args, clientID.String())
	}
	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, status.String())
	}

	resp := GetOrdersQueryResponse{
		Orders: make([]OrderSummary, 0),
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}

	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders WHERE "+where, args...).Row()
	if err := countRow.Scan(&resp.Total); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			tracking_code,
			status,
			payment_status,
			pickup_city,
			delivery_city,
			cargo_type,
			weight_kg,
			total_cost,
			created_at,
			delivered_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var s OrderSummary
		err = rows.Scan(
			&s.ID,
			&s.Number,
			&s.TrackingCode,
			&s.Status,
			&s.PaymentStatus,
			&s.OriginCity,
			&s.DestinationCity,
			&s.CargoType,
			&s.WeightKg,
			&s.TotalCost,
			&s.CreatedAt,
			&s.DeliveredAt,
		)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}
		resp.Orders = append(resp.Orders, s)
	}
	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return resp, nil
}
