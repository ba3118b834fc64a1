// rate_limiter.go
// ----------------
// This file defines the RateLimiter type, the admission gate every request
// through one Conn passes before it is sent. It enforces a minimum spacing
// between request starts, shared across all callers of that Conn.
//
// The spacing is delegated to a burst-1 token bucket refilling once per
// interval: concurrent Admit calls each reserve the next free slot, so
// successive admissions are spaced by at least one interval with no two
// callers computing overlapping waits. One RateLimiter exists per Conn and
// is never shared across connections.
package merakibridge

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

type RateLimiter struct {
	interval time.Duration
	limiter  *rate.Limiter
}

func NewRateLimiter(interval time.Duration) *RateLimiter {
	if interval <= 0 {
		interval = DefaultRateLimitInterval
	}
	return &RateLimiter{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Admit blocks until the caller may start its request. The first admission
// on a fresh limiter proceeds immediately. The only error condition is ctx
// being done before the reserved slot arrives.
func (r *RateLimiter) Admit(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Interval reports the configured minimum spacing.
func (r *RateLimiter) Interval() time.Duration {
	return r.interval
}
