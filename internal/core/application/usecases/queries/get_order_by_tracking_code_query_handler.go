package queries

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"cargotrack/internal/core/ports"
	"cargotrack/internal/pkg/errs"
)

// trackingCacheTTL bounds staleness for cache entries that survive a missed
// invalidation.
const trackingCacheTTL = 5 * time.Minute

// GetOrderByTrackingCodeQueryHandler serves public tracking lookups.
//
// Lookups go through the tracking cache first; on a miss the handler reads
// the order and its history from the database and stores the serialized
// response back. Cache failures are ignored, the database is authoritative.
type GetOrderByTrackingCodeQueryHandler struct {
	db    *gorm.DB
	cache ports.TrackingCache
}

// NewGetOrderByTrackingCodeQueryHandler creates a handler for tracking lookups.
// cache may be nil when tracking caching is disabled.
func NewGetOrderByTrackingCodeQueryHandler(db *gorm.DB,
	cache ports.TrackingCache) GetOrderByTrackingCodeQueryHandler {
	return GetOrderByTrackingCodeQueryHandler{db: db, cache: cache}
}

// Handle resolves the tracking code to the public order view.
// Returns an ObjectNotFoundError when no order carries the code.
func (h GetOrderByTrackingCodeQueryHandler) Handle(ctx context.Context,
	query GetOrderByTrackingCodeQuery) (GetOrderByTrackingCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByTrackingCodeQueryResponse{}, err
	}

	code := query.TrackingCode().String()

	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx, code); ok {
			var cached GetOrderByTrackingCodeQueryResponse
			if json.Unmarshal([]byte(payload), &cached) == nil {
				return cached, nil
			}
		}
	}

	resp, err := h.load(ctx, code)
	if err != nil {
		return GetOrderByTrackingCodeQueryResponse{}, err
	}

	if h.cache != nil {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			h.cache.Set(ctx, code, string(payload), trackingCacheTTL)
		}
	}

	return resp, nil
}

func (h GetOrderByTrackingCodeQueryHandler) load(ctx context.Context,
	code string) (GetOrderByTrackingCodeQueryResponse, error) {
	var resp GetOrderByTrackingCodeQueryResponse
	var orderID string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			tracking_code,
			status,
			current_location,
			pickup_city,
			delivery_city,
			created_at,
			delivered_at
		FROM orders
		WHERE tracking_code = ?
	`, code).Row()

	err := row.Scan(
		&orderID,
		&resp.Number,
		&resp.TrackingCode,
		&resp.Status,
		&resp.CurrentLocation,
		&resp.OriginCity,
		&resp.DestinationCity,
		&resp.CreatedAt,
		&resp.DeliveredAt,
	)
	if err != nil {
		return GetOrderByTrackingCodeQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"trackingCode", code, err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, location, notes, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, orderID).Rows()
	if err != nil {
		return GetOrderByTrackingCodeQueryResponse{}, err
	}
	defer rows.Close()

	resp.Events = make([]TrackingEvent, 0)
	for rows.Next() {
		var event TrackingEvent
		if err = rows.Scan(&event.Status, &event.Location, &event.Notes, &event.CreatedAt); err != nil {
			return GetOrderByTrackingCodeQueryResponse{}, err
		}
		resp.Events = append(resp.Events, event)
	}
	if err = rows.Err(); err != nil {
		return GetOrderByTrackingCodeQueryResponse{}, err
	}

	return resp, nil
}
