package services

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// buildNotesIndex drains the provider's notes stream into a map keyed by
// note ID. Enrichment is best-effort: if any page fetch exhausts its
// retries the accumulated index is returned with complete=false instead
// of failing the run. Last write wins on duplicate IDs.
func buildNotesIndex(
	ctx context.Context,
	provider driven.MeetingProvider,
	sink driven.ProgressSink,
) (map[string]domain.Note, bool) {
	index := make(map[string]domain.Note)
	cursor := ""

	for {
		page, err := provider.NotesPage(ctx, cursor)
		if err != nil {
			logger.Warn("notes index incomplete after %d notes: %v", len(index), err)
			sink.Progress("notes index incomplete (%d notes): %v", len(index), err)
			return index, false
		}

		if len(page.Items) == 0 {
			return index, true
		}
		for _, note := range page.Items {
			index[note.ID] = note
		}

		if page.NextCursor == "" {
			return index, true
		}
		cursor = page.NextCursor
	}
}
