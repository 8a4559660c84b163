package meetnotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPage_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"r1"}],"page_info":{"cursor":""}}`))
	}))
	defer srv.Close()

	page, err := newTestClient(srv).RecordingsPage(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPage_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).RecordingsPage(context.Background(), "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	// Three attempts, never a fourth.
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPage_BackoffDoubles(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":[],"page_info":{"cursor":""}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.retryDelay = 20 * time.Millisecond

	start := time.Now()
	_, err := c.RecordingsPage(context.Background(), "")
	require.NoError(t, err)

	// First delay 20ms, second 40ms.
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestFetchPage_UnauthorizedNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).NotesPage(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchPage_CancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.retryDelay = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.RecordingsPage(ctx, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
