package drive

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// headerLines is the size of the WebVTT preamble ("WEBVTT", kind, lang).
const headerLines = 3

// cueTimingRegex matches a cue timing line: HH:MM:SS.mmm --> HH:MM:SS.mmm.
var cueTimingRegex = regexp.MustCompile(
	`^(\d{2}:\d{2}:\d{2}\.\d{3})\s+-->\s+(\d{2}:\d{2}:\d{2}\.\d{3})`)

// ParseWebVTT extracts caption cues from a WebVTT payload.
// The three header lines are skipped, as is any line that is not a
// timing line or the text following one.
func ParseWebVTT(r io.Reader) ([]domain.CaptionCue, error) {
	scanner := bufio.NewScanner(r)

	var cues []domain.CaptionCue
	var current *domain.CaptionCue
	line := 0

	for scanner.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		text := scanner.Text()

		if m := cueTimingRegex.FindStringSubmatch(text); m != nil {
			if current != nil {
				cues = append(cues, *current)
			}
			current = &domain.CaptionCue{Start: m[1], End: m[2]}
			continue
		}

		if current == nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			cues = append(cues, *current)
			current = nil
			continue
		}
		if current.Text != "" {
			current.Text += " "
		}
		current.Text += strings.TrimSpace(text)
	}
	if current != nil {
		cues = append(cues, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cues, nil
}
