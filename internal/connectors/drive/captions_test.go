package drive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionClient_FetchCaptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/export", r.URL.Path)
		assert.Equal(t, "vid-1", r.URL.Query().Get("id"))
		assert.Equal(t, CaptionKind, r.URL.Query().Get("kind"))
		assert.Equal(t, CaptionLang, r.URL.Query().Get("lang"))
		assert.Equal(t, "SID=abc; HSID=def", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte(sampleVTT))
	}))
	defer srv.Close()

	c := NewCaptionClient(srv.URL, "SID=abc; HSID=def")
	cues, err := c.FetchCaptions(context.Background(), "vid-1")
	require.NoError(t, err)
	assert.Len(t, cues, 2)
}

func TestCaptionClient_FetchCaptions_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewCaptionClient(srv.URL, "")
	_, err := c.FetchCaptions(context.Background(), "vid-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
