package driving

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// LifecycleManager exposes selection, archival and restore transitions
// over stored transcript records.
type LifecycleManager interface {
	// List returns records, optionally including archived ones.
	List(ctx context.Context, includeArchived bool) ([]domain.TranscriptRecord, error)

	// Select marks records as included or excluded.
	Select(ctx context.Context, ids []string, selected domain.Selection) error

	// Archive archives records by ID.
	Archive(ctx context.Context, ids []string) error

	// Restore un-archives records by ID.
	Restore(ctx context.Context, ids []string) error

	// RestoreAll un-archives every archived record, returning the count.
	RestoreAll(ctx context.Context) (int, error)

	// ArchiveExcluded archives all excluded records, returning the count.
	ArchiveExcluded(ctx context.Context) (int, error)

	// ArchiveExported archives all exported records, returning the count.
	ArchiveExported(ctx context.Context) (int, error)

	// Reset deletes every stored record.
	Reset(ctx context.Context) error
}

// Exporter packages selected transcripts into a downloadable archive.
type Exporter interface {
	// Export writes the current working set (selected, non-archived
	// records) to a ZIP archive at path, marks the records exported and
	// returns how many entries were written.
	Export(ctx context.Context, path string) (int, error)
}
