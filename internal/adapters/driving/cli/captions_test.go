package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// mockCaptionFetcher implements driven.CaptionFetcher for testing.
type mockCaptionFetcher struct {
	cues   []domain.CaptionCue
	err    error
	fileID string
}

func (m *mockCaptionFetcher) FetchCaptions(_ context.Context, fileID string) ([]domain.CaptionCue, error) {
	m.fileID = fileID
	return m.cues, m.err
}

func TestCaptionsCmd_Use(t *testing.T) {
	assert.Equal(t, "captions <file-id>", captionsCmd.Use)
}

func TestCaptionsCmd_PrintsCueText(t *testing.T) {
	mock := &mockCaptionFetcher{cues: []domain.CaptionCue{
		{Start: "00:00:01.000", End: "00:00:03.000", Text: "hello there"},
		{Start: "00:00:03.000", End: "00:00:05.000", Text: "general meeting"},
	}}
	old := captionFetcher
	captionFetcher = mock
	defer func() {
		captionFetcher = old
		captionsTimestamps = false
	}()

	out, err := execute(t, "captions", "file-123")
	require.NoError(t, err)
	assert.Equal(t, "file-123", mock.fileID)
	assert.Contains(t, out, "hello there")
	assert.NotContains(t, out, "00:00:01.000")

	out, err = execute(t, "captions", "file-123", "--timestamps")
	require.NoError(t, err)
	assert.Contains(t, out, "00:00:01.000 --> 00:00:03.000")
}
