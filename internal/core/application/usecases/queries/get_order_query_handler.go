package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"cargotrack/internal/pkg/errs"
)

// GetOrderQueryHandler loads one order's detail view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order row, or an ObjectNotFoundError when absent.
func (h GetOrderQueryHandler) Handle(ctx context.Context,
	query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			tracking_code,
			client_id,
			tariff_id,
			cargo_description,
			cargo_type,
			weight_kg,
			volume_m3,
			declared_value,
			pieces_count,
			pickup_city, pickup_street, pickup_contact_name, pickup_contact_phone,
			delivery_city, delivery_street, delivery_contact_name, delivery_contact_phone,
			base_cost, weight_cost, distance_cost, volume_cost,
			insurance_cost, extra_services_cost, discount, total_cost,
			status,
			payment_status,
			current_location,
			created_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Number,
		&resp.TrackingCode,
		&resp.ClientID,
		&resp.TariffID,
		&resp.CargoDescription,
		&resp.CargoType,
		&resp.WeightKg,
		&resp.VolumeM3,
		&resp.DeclaredValue,
		&resp.PiecesCount,
		&resp.Pickup.City, &resp.Pickup.Street,
		&resp.Pickup.ContactName, &resp.Pickup.ContactPhone,
		&resp.Delivery.City, &resp.Delivery.Street,
		&resp.Delivery.ContactName, &resp.Delivery.ContactPhone,
		&resp.Cost.Base, &resp.Cost.Weight, &resp.Cost.Distance, &resp.Cost.Volume,
		&resp.Cost.Insurance, &resp.Cost.ExtraServices, &resp.Cost.Discount, &resp.Cost.Total,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.CurrentLocation,
		&resp.CreatedAt,
		&resp.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"order", query.OrderID().String(), err)
		}
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
