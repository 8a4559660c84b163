package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// TranscriptStore persists transcript records and their lifecycle state.
// Backed by SQLite. All operations are idempotent and safe to repeat;
// the store provides its own atomicity for individual calls, so an
// ingestion run is never wrapped in one transaction.
type TranscriptStore interface {
	// ExistsForCredential reports whether a record with this provider ID
	// is already associated with the credential.
	ExistsForCredential(ctx context.Context, externalID, credentialID string) (bool, error)

	// Save inserts a new record, or, when a record with the same
	// ExternalID already exists, associates the credential with it and
	// leaves the stored content untouched.
	Save(ctx context.Context, record *domain.TranscriptRecord, credentialID string) error

	// Get retrieves a record by internal ID.
	Get(ctx context.Context, id string) (*domain.TranscriptRecord, error)

	// List returns records, optionally including archived ones,
	// newest first.
	List(ctx context.Context, includeArchived bool) ([]domain.TranscriptRecord, error)

	// SetSelection updates the tri-state selection for the given records.
	SetSelection(ctx context.Context, ids []string, selected domain.Selection) error

	// ArchiveByIDs archives the given records.
	ArchiveByIDs(ctx context.Context, ids []string) error

	// RestoreByIDs un-archives the given records, preserving selection
	// and export fields.
	RestoreByIDs(ctx context.Context, ids []string) error

	// RestoreAllArchived un-archives every archived record and returns
	// how many were restored.
	RestoreAllArchived(ctx context.Context) (int, error)

	// ArchiveExcluded archives all non-archived records whose selection
	// is excluded. Returns the number archived.
	ArchiveExcluded(ctx context.Context) (int, error)

	// ArchiveExported archives all non-archived records that have been
	// exported. Returns the number archived.
	ArchiveExported(ctx context.Context) (int, error)

	// MarkExported stamps the given records with the export time.
	MarkExported(ctx context.Context, ids []string, exportedAt time.Time) error

	// Reset deletes every record. The only physical delete in the store.
	Reset(ctx context.Context) error
}
