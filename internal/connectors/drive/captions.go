package drive

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

const (
	// DefaultTimeout is the caption download timeout.
	DefaultTimeout = 30 * time.Second

	// CaptionKind selects the machine-generated (ASR) caption track.
	CaptionKind = "asr"

	// CaptionLang selects the English caption track.
	CaptionLang = "en"
)

// Ensure CaptionClient implements the port.
var _ driven.CaptionFetcher = (*CaptionClient)(nil)

// CaptionClient downloads WebVTT captions from the drive export
// endpoint using forwarded browser session cookies.
type CaptionClient struct {
	baseURL string
	cookie  string
	http    *http.Client
}

// NewCaptionClient creates a caption client. The cookie string is
// forwarded verbatim as the Cookie header.
func NewCaptionClient(baseURL, cookie string) *CaptionClient {
	return &CaptionClient{
		baseURL: baseURL,
		cookie:  cookie,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchCaptions downloads and parses the ASR caption track for a video.
// On failure the caller should escalate to browser-driven capture.
func (c *CaptionClient) FetchCaptions(ctx context.Context, fileID string) ([]domain.CaptionCue, error) {
	q := url.Values{}
	q.Set("id", fileID)
	q.Set("kind", CaptionKind)
	q.Set("lang", CaptionLang)
	exportURL := c.baseURL + "/export?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("drive: caption export for %s answered %d, browser capture needed", fileID, resp.StatusCode)
		return nil, fmt.Errorf("fetch captions: status %d", resp.StatusCode)
	}

	cues, err := ParseWebVTT(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse captions: %w", err)
	}
	return cues, nil
}
