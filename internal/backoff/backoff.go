// Package backoff provides the bounded exponential retry schedule used
// for provider page fetches and per-record saves.
package backoff

import (
	"context"
	"time"
)

const (
	// MaxRetries is the maximum number of attempts.
	MaxRetries = 3

	// InitialDelay is the delay after the first failed attempt.
	// Subsequent delays double: 1s, 2s, 4s.
	InitialDelay = time.Second
)

// Retry runs fn up to attempts times, sleeping initialDelay*2^(n-1)
// between attempts. The delay is abandoned immediately on context
// cancellation. The last attempt's error is returned unwrapped so
// callers can inspect it.
func Retry(ctx context.Context, attempts int, initialDelay time.Duration, fn func() error) error {
	var err error
	delay := initialDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
