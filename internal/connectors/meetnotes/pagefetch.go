package meetnotes

import (
	"context"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// fetchPage wraps a single page-fetch call with bounded retry and
// exponential backoff. Authentication failures are never retried; the
// final failed attempt's error propagates to the caller. Retry applies
// per page call, not across pages.
func fetchPage[T any](
	ctx context.Context,
	c *Client,
	fetch func(ctx context.Context) (*driven.Page[T], error),
) (*driven.Page[T], error) {
	var lastErr error
	delay := c.retryDelay

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		page, err := fetch(ctx)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if IsUnauthorized(err) {
			return nil, err
		}
		if attempt == c.maxRetries {
			break
		}

		logger.Debug("meetnotes: page fetch attempt %d failed, retrying in %s: %v", attempt, delay, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, lastErr
}
