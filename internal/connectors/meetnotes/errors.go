package meetnotes

import (
	"errors"
	"fmt"
)

// ErrInvalidCursor indicates the provider rejected a continuation cursor.
var ErrInvalidCursor = errors.New("meetnotes: invalid cursor")

// APIError represents a provider API error response, including any
// non-2xx status. Transport-level failures are wrapped with a zero
// status code.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("meetnotes: request failed: %s (URL: %s)", e.Message, e.URL)
	}
	return fmt.Sprintf("meetnotes: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited checks if the error indicates provider-side throttling.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
