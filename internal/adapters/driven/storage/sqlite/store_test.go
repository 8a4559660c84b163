package sqlite

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "minutes-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func testRecord(id, externalID string) *domain.TranscriptRecord {
	occurred := time.Date(2026, 7, 14, 9, 30, 0, 0, time.UTC)
	return &domain.TranscriptRecord{
		ID:            id,
		ExternalID:    externalID,
		Title:         "Planning sync",
		RawContent:    `{"transcript":"hello"}`,
		Participants:  []string{"Anna", "Ben"},
		OccurredAt:    &occurred,
		LengthMinutes: 45,
		ContentLength: 22,
		SourceDetail:  "/team/planning",
		Scope:         domain.ScopeInternal,
		CreatedAt:     time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "minutes-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same directory re-runs migrate against the existing
	// schema without error.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestTranscriptStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	record := testRecord("id-1", "ext-1")
	require.NoError(t, transcripts.Save(ctx, record, "cred-1"))

	got, err := transcripts.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "ext-1", got.ExternalID)
	assert.Equal(t, "Planning sync", got.Title)
	assert.Equal(t, []string{"Anna", "Ben"}, got.Participants)
	assert.Equal(t, domain.ScopeInternal, got.Scope)
	assert.Equal(t, 45, got.LengthMinutes)
	assert.Equal(t, []string{"cred-1"}, got.CredentialIDs)
	require.NotNil(t, got.OccurredAt)
	assert.True(t, got.OccurredAt.Equal(*record.OccurredAt))

	_, err = transcripts.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTranscriptStore_SaveRejectsMissingExternalID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.TranscriptStore().Save(context.Background(),
		&domain.TranscriptRecord{ID: "id-1"}, "cred-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTranscriptStore_SaveAssociatesSecondCredential(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	require.NoError(t, transcripts.Save(ctx, testRecord("id-1", "ext-1"), "cred-1"))

	// A different internal ID with the same external ID must not create
	// a second row; the content stays as first stored.
	duplicate := testRecord("id-2", "ext-1")
	duplicate.Title = "Changed title"
	require.NoError(t, transcripts.Save(ctx, duplicate, "cred-2"))

	records, err := transcripts.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id-1", records[0].ID)
	assert.Equal(t, "Planning sync", records[0].Title)
	assert.Equal(t, []string{"cred-1", "cred-2"}, records[0].CredentialIDs)

	for _, credID := range []string{"cred-1", "cred-2"} {
		exists, err := transcripts.ExistsForCredential(ctx, "ext-1", credID)
		require.NoError(t, err)
		assert.True(t, exists, credID)
	}

	exists, err := transcripts.ExistsForCredential(ctx, "ext-1", "cred-3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTranscriptStore_SaveIdempotentPerCredential(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	require.NoError(t, transcripts.Save(ctx, testRecord("id-1", "ext-1"), "cred-1"))
	require.NoError(t, transcripts.Save(ctx, testRecord("id-9", "ext-1"), "cred-1"))

	records, err := transcripts.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"cred-1"}, records[0].CredentialIDs)
}

func TestTranscriptStore_ListOrderAndArchiveFilter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	older := testRecord("id-old", "ext-old")
	older.CreatedAt = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	newer := testRecord("id-new", "ext-new")
	newer.CreatedAt = time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, transcripts.Save(ctx, older, "cred-1"))
	require.NoError(t, transcripts.Save(ctx, newer, "cred-1"))

	records, err := transcripts.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id-new", records[0].ID, "newest first")

	require.NoError(t, transcripts.ArchiveByIDs(ctx, []string{"id-new"}))

	active, err := transcripts.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "id-old", active[0].ID)
}

func TestTranscriptStore_LifecycleTransitions(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, transcripts.Save(ctx, testRecord(id, "ext-"+id), "cred-1"))
	}

	require.NoError(t, transcripts.SetSelection(ctx, []string{"a", "b"}, domain.SelectionExcluded))
	require.NoError(t, transcripts.SetSelection(ctx, []string{"c"}, domain.SelectionIncluded))

	archived, err := transcripts.ArchiveExcluded(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, archived)

	// Already archived records are not archived twice.
	archived, err = transcripts.ArchiveExcluded(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, archived)

	require.NoError(t, transcripts.RestoreByIDs(ctx, []string{"a"}))
	got, err := transcripts.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, got.Archived)
	assert.Equal(t, domain.SelectionExcluded, got.Selected, "restore keeps selection")

	restored, err := transcripts.RestoreAllArchived(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)
}

func TestTranscriptStore_MarkExportedAndArchiveExported(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	require.NoError(t, transcripts.Save(ctx, testRecord("a", "ext-a"), "cred-1"))
	require.NoError(t, transcripts.Save(ctx, testRecord("b", "ext-b"), "cred-1"))

	exportedAt := time.Date(2026, 7, 20, 18, 0, 0, 0, time.UTC)
	require.NoError(t, transcripts.MarkExported(ctx, []string{"a"}, exportedAt))

	got, err := transcripts.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got.ExportedAt)
	assert.True(t, got.ExportedAt.Equal(exportedAt))

	archived, err := transcripts.ArchiveExported(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)

	active, err := transcripts.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].ID)
}

func TestTranscriptStore_Reset(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	transcripts := store.TranscriptStore()
	ctx := context.Background()

	require.NoError(t, transcripts.Save(ctx, testRecord("a", "ext-a"), "cred-1"))
	require.NoError(t, transcripts.Reset(ctx))

	records, err := transcripts.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The association rows cascade away; re-ingesting starts clean.
	exists, err := transcripts.ExistsForCredential(ctx, "ext-a", "cred-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCredentialStore_CRUD(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	credentials := store.CredentialStore()
	ctx := context.Background()

	cred := domain.Credential{
		ID:      "cred-1",
		Label:   "work",
		APIKey:  "key-123",
		Enabled: true,
	}
	require.NoError(t, credentials.Save(ctx, cred))

	got, err := credentials.Get(ctx, "cred-1")
	require.NoError(t, err)
	assert.Equal(t, "work", got.Label)
	assert.True(t, got.Enabled)
	assert.False(t, got.CreatedAt.IsZero())

	// Upsert keeps the row count at one.
	cred.OwnerEmail = "owner@acme.io"
	require.NoError(t, credentials.Save(ctx, cred))
	list, err := credentials.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "owner@acme.io", list[0].OwnerEmail)

	require.NoError(t, credentials.SetEnabled(ctx, "cred-1", false))
	got, err = credentials.Get(ctx, "cred-1")
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	assert.ErrorIs(t, credentials.SetEnabled(ctx, "missing", true), domain.ErrNotFound)

	require.NoError(t, credentials.Delete(ctx, "cred-1"))
	_, err = credentials.Get(ctx, "cred-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
