// Package queries contains read-only operations against the database.
// Query handlers bypass the domain aggregates and read projections directly,
// following the CQRS split: commands go through aggregates and the unit of
// work, queries go through raw SQL.
package queries

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/guard"
)

var ErrGetOrderByTrackingCodeQueryIsNotConstructed = errors.New(
	"GetOrderByTrackingCodeQuery must be created via NewGetOrderByTrackingCodeQuery constructor",
)

// GetOrderByTrackingCodeQuery is the public tracking lookup. The raw code is
// normalized through kernel.TrackingCodeFromString, so "trk12345" and
// "TRK12345" resolve to the same order.
type GetOrderByTrackingCodeQuery struct {
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewGetOrderByTrackingCodeQuery creates a tracking lookup query from a raw
// user-supplied code. Returns a validation error for codes that cannot be a
// tracking code (too short, bad characters).
func NewGetOrderByTrackingCodeQuery(rawCode string) (GetOrderByTrackingCodeQuery, error) {
	code, err := kernel.TrackingCodeFromString(rawCode)
	if err != nil {
		return GetOrderByTrackingCodeQuery{}, err
	}

	return GetOrderByTrackingCodeQuery{
		trackingCode: code,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByTrackingCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingCodeQueryIsNotConstructed)
}

// TrackingCode returns the normalized tracking code.
func (q GetOrderByTrackingCodeQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// TrackingEvent is one public history row of a tracked order.
type TrackingEvent struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetOrderByTrackingCodeQueryResponse is the public view of a tracked order.
// It deliberately omits client identity, contacts, and cost internals.
type GetOrderByTrackingCodeQueryResponse struct {
	Number          string          `json:"number"`
	TrackingCode    string          `json:"trackingCode"`
	Status          string          `json:"status"`
	CurrentLocation string          `json:"currentLocation,omitempty"`
	OriginCity      string          `json:"originCity"`
	DestinationCity string          `json:"destinationCity"`
	CreatedAt       time.Time       `json:"createdAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	Events          []TrackingEvent `json:"events"`
}
