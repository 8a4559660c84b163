package meetnotes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/backoff"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the page size requested from list endpoints.
	DefaultPageSize = 50

	// HeaderAPIKey is the provider authentication header.
	HeaderAPIKey = "X-API-KEY"

	// HeaderRetryAfter is the throttle backoff header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// Ensure Client implements the provider port.
var _ driven.MeetingProvider = (*Client)(nil)

// Client speaks the meeting-notes provider REST API on behalf of one
// credential. All calls share the client's rate limiter.
type Client struct {
	baseURL    string
	apiKey     string
	http       *http.Client
	limiter    *RateLimiter
	pageSize   int
	maxRetries int
	retryDelay time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithPageSize sets the page size requested from list endpoints.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMinInterval overrides the minimum spacing between provider calls.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) { c.limiter = NewRateLimiter(d) }
}

// NewClient creates a provider client for one API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		http:       &http.Client{Timeout: DefaultTimeout},
		limiter:    NewRateLimiter(MinCallInterval),
		pageSize:   DefaultPageSize,
		maxRetries: backoff.MaxRetries,
		retryDelay: backoff.InitialDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RateLimiter returns the client's rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.limiter
}

// WhoAmI resolves the account behind the API key.
func (c *Client) WhoAmI(ctx context.Context) (*driven.ProviderAccount, error) {
	var account accountWire
	if err := c.do(ctx, http.MethodGet, "/v1/me", nil, &account); err != nil {
		return nil, err
	}
	return &driven.ProviderAccount{Email: account.Email, Name: account.Name}, nil
}

// NotesPage fetches one page of the notes stream with retry.
func (c *Client) NotesPage(ctx context.Context, cursor string) (*driven.Page[domain.Note], error) {
	return fetchPage(ctx, c, func(ctx context.Context) (*driven.Page[domain.Note], error) {
		return c.listNotes(ctx, cursor)
	})
}

// RecordingsPage fetches one page of the recordings stream with retry.
func (c *Client) RecordingsPage(ctx context.Context, cursor string) (*driven.Page[domain.Recording], error) {
	return fetchPage(ctx, c, func(ctx context.Context) (*driven.Page[domain.Recording], error) {
		return c.listRecordings(ctx, cursor)
	})
}

// listNotes performs a single notes list call, without retry.
func (c *Client) listNotes(ctx context.Context, cursor string) (*driven.Page[domain.Note], error) {
	req := listRequest{
		Pagination: pagination{PageSize: c.pageSize, Cursor: cursor},
		Include:    map[string]bool{"attendees": true},
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodPost, "/v1/notes/list", req, &resp); err != nil {
		return nil, err
	}

	page := &driven.Page[domain.Note]{NextCursor: resp.PageInfo.Cursor}
	for _, raw := range resp.Data {
		var note noteWire
		if err := json.Unmarshal(raw, &note); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		page.Items = append(page.Items, note.toDomain())
	}
	return page, nil
}

// listRecordings performs a single recordings list call, without retry.
func (c *Client) listRecordings(ctx context.Context, cursor string) (*driven.Page[domain.Recording], error) {
	req := listRequest{
		Pagination: pagination{PageSize: c.pageSize, Cursor: cursor},
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodPost, "/v1/recordings/list", req, &resp); err != nil {
		return nil, err
	}

	page := &driven.Page[domain.Recording]{NextCursor: resp.PageInfo.Cursor}
	for _, raw := range resp.Data {
		var rec recordingWire
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode recording: %w", err)
		}
		page.Items = append(page.Items, rec.toDomain(raw))
	}
	return page, nil
}

// do performs one rate-limited request and decodes the JSON response.
// Any non-2xx status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: err.Error(), URL: url}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.limiter.RecordRateLimitError(retryAfter(resp))
		}
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(bytes.TrimSpace(msg)),
			URL:        url,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// retryAfter parses the Retry-After header, defaulting to the minimum
// call interval when absent or malformed.
func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get(HeaderRetryAfter); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return MinCallInterval
}
