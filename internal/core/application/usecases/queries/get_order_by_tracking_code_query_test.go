package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cargotrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByTrackingCodeQuery(t *testing.T) {
	t.Run("should normalize lowercase codes", func(t *testing.T) {
		lower, err := queries.NewGetOrderByTrackingCodeQuery("test123456")
		require.NoError(t, err)

		upper, err := queries.NewGetOrderByTrackingCodeQuery("TEST123456")
		require.NoError(t, err)

		assert.Equal(t, upper.TrackingCode().String(), lower.TrackingCode().String())
		assert.Equal(t, "TEST123456", lower.TrackingCode().String())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		q, err := queries.NewGetOrderByTrackingCodeQuery("  trk12345678  ")

		require.NoError(t, err)
		assert.Equal(t, "TRK12345678", q.TrackingCode().String())
	})

	t.Run("should reject short codes", func(t *testing.T) {
		_, err := queries.NewGetOrderByTrackingCodeQuery("abc")

		require.Error(t, err)
	})

	t.Run("should reject zero value query in Validate", func(t *testing.T) {
		var q queries.GetOrderByTrackingCodeQuery

		require.ErrorIs(t, q.Validate(),
			queries.ErrGetOrderByTrackingCodeQueryIsNotConstructed)
	})
}

type stubTrackingCache struct {
	payloads map[string]string
	sets     int
}

func (s *stubTrackingCache) Get(_ context.Context, code string) (string, bool) {
	payload, ok := s.payloads[code]
	return payload, ok
}

func (s *stubTrackingCache) Set(_ context.Context, code, payload string, _ time.Duration) {
	s.payloads[code] = payload
	s.sets++
}

func (s *stubTrackingCache) Invalidate(_ context.Context, code string) {
	delete(s.payloads, code)
}

func TestGetOrderByTrackingCodeQueryHandler_CacheHit(t *testing.T) {
	t.Run("should serve cached payload without touching the database", func(t *testing.T) {
		cached := queries.GetOrderByTrackingCodeQueryResponse{
			Number:       "ORD-20260831-000001",
			TrackingCode: "TRK12345678",
			Status:       "in_transit",
			OriginCity:   "Москва",
		}
		payload, err := json.Marshal(cached)
		require.NoError(t, err)

		cache := &stubTrackingCache{payloads: map[string]string{
			"TRK12345678": string(payload),
		}}

		// nil db proves the database is not consulted on a hit
		h := queries.NewGetOrderByTrackingCodeQueryHandler(nil, cache)

		query, err := queries.NewGetOrderByTrackingCodeQuery("trk12345678")
		require.NoError(t, err)

		resp, err := h.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, cached.Number, resp.Number)
		assert.Equal(t, cached.Status, resp.Status)
		assert.Zero(t, cache.sets)
	})
}
