package ports

import (
	"context"
	"time"
)

// TrackingCache is a read-through cache for public tracking lookups, keyed by
// normalized tracking code. A cache failure must never fail the lookup; the
// caller falls back to the repository.
type TrackingCache interface {
	// Get returns the cached tracking payload, or ("", false) on a miss.
	Get(ctx context.Context, trackingCode string) (string, bool)

	// Set stores the tracking payload under the code for the given TTL.
	Set(ctx context.Context, trackingCode, payload string, ttl time.Duration)

	// Invalidate drops the cached payload for the code, if any. Called on
	// every status change so public tracking never shows stale state.
	Invalidate(ctx context.Context, trackingCode string)
}
