package meetnotes

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MinCallInterval is the minimum spacing between any two provider calls
// issued through one client instance.
const MinCallInterval = 500 * time.Millisecond

// RateLimiter enforces a minimum inter-call gap shared across all
// concurrent callers of one client instance. The wait happens before the
// request; the network call itself is never serialised. One limiter per
// client, so multiple provider accounts throttle independently.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a rate limiter with the given minimum spacing.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until a request can be made without violating the minimum
// spacing. It also respects any backoff period recorded from a 429.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if wait := time.Until(retryAt); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError backs off until retryAfter from now, for when the
// provider answers 429 despite the proactive spacing.
func (r *RateLimiter) RecordRateLimitError(retryAfter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryAt = time.Now().Add(retryAfter)
}
