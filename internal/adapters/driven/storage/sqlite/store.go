package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// transcript and credential store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.minutes/data/minutes.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".minutes", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "minutes.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// TranscriptStore returns a TranscriptStore interface backed by this store.
func (s *Store) TranscriptStore() driven.TranscriptStore {
	return &transcriptStore{store: s}
}

// CredentialStore returns a CredentialStore interface backed by this store.
func (s *Store) CredentialStore() driven.CredentialStore {
	return &credentialStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Transcript Store ====================

// transcriptStore implements driven.TranscriptStore.
type transcriptStore struct {
	store *Store
}

var _ driven.TranscriptStore = (*transcriptStore)(nil)

const transcriptColumns = `id, external_id, title, raw_content, participants,
	occurred_at, length_minutes, content_length, source_detail, scope,
	selected, archived, exported_at, created_at`

// ExistsForCredential reports whether a record with this provider ID is
// already associated with the credential.
func (t *transcriptStore) ExistsForCredential(ctx context.Context, externalID, credentialID string) (bool, error) {
	row := t.store.db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM transcripts tr
		JOIN transcript_credentials tc ON tc.transcript_id = tr.id
		WHERE tr.external_id = ? AND tc.credential_id = ?
	`, externalID, credentialID)

	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("checking existence: %w", err)
	}
	return count > 0, nil
}

// Save inserts a new record, or, when a record with the same ExternalID
// already exists, associates the credential and leaves the stored
// content untouched.
func (t *transcriptStore) Save(ctx context.Context, record *domain.TranscriptRecord, credentialID string) error {
	if record.ExternalID == "" {
		return fmt.Errorf("%w: record has no external ID", domain.ErrInvalidInput)
	}

	tx, err := t.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var existingID string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM transcripts WHERE external_id = ?", record.ExternalID,
	).Scan(&existingID)

	switch {
	case err == nil:
		// Already stored under another credential; only the association
		// is new.
		record.ID = existingID
	case errors.Is(err, sql.ErrNoRows):
		participantsJSON, err := json.Marshal(record.Participants)
		if err != nil {
			return fmt.Errorf("marshalling participants: %w", err)
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = time.Now().UTC()
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO transcripts (`+transcriptColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, record.ID, record.ExternalID, record.Title, record.RawContent,
			string(participantsJSON), nullTime(record.OccurredAt),
			record.LengthMinutes, record.ContentLength, record.SourceDetail,
			string(record.Scope), int(record.Selected), boolInt(record.Archived),
			nullTime(record.ExportedAt), record.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting transcript: %w", err)
		}
	default:
		return fmt.Errorf("looking up transcript: %w", err)
	}

	if credentialID != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO transcript_credentials (transcript_id, credential_id)
			VALUES (?, ?)
		`, record.ID, credentialID)
		if err != nil {
			return fmt.Errorf("associating credential: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Get retrieves a record by internal ID.
func (t *transcriptStore) Get(ctx context.Context, id string) (*domain.TranscriptRecord, error) {
	row := t.store.db.QueryRowContext(ctx,
		"SELECT "+transcriptColumns+" FROM transcripts WHERE id = ?", id)

	record, err := scanTranscript(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := t.attachCredentials(ctx, []*domain.TranscriptRecord{record}); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns records, optionally including archived ones, newest first.
func (t *transcriptStore) List(ctx context.Context, includeArchived bool) ([]domain.TranscriptRecord, error) {
	query := "SELECT " + transcriptColumns + " FROM transcripts"
	if !includeArchived {
		query += " WHERE archived = 0"
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := t.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying transcripts: %w", err)
	}
	defer rows.Close()

	var records []domain.TranscriptRecord //nolint:prealloc // size unknown from query
	var ptrs []*domain.TranscriptRecord
	for rows.Next() {
		record, err := scanTranscript(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcripts: %w", err)
	}

	for i := range records {
		ptrs = append(ptrs, &records[i])
	}
	if err := t.attachCredentials(ctx, ptrs); err != nil {
		return nil, err
	}
	return records, nil
}

// SetSelection updates the tri-state selection for the given records.
func (t *transcriptStore) SetSelection(ctx context.Context, ids []string, selected domain.Selection) error {
	if len(ids) == 0 {
		return nil
	}
	query := "UPDATE transcripts SET selected = ? WHERE id IN (" + placeholders(len(ids)) + ")"
	args := make([]any, 0, len(ids)+1)
	args = append(args, int(selected))
	for _, id := range ids {
		args = append(args, id)
	}
	if _, err := t.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating selection: %w", err)
	}
	return nil
}

// ArchiveByIDs archives the given records.
func (t *transcriptStore) ArchiveByIDs(ctx context.Context, ids []string) error {
	return t.execByIDs(ctx, "UPDATE transcripts SET archived = 1 WHERE id IN", ids)
}

// RestoreByIDs un-archives the given records, preserving selection and
// export fields.
func (t *transcriptStore) RestoreByIDs(ctx context.Context, ids []string) error {
	return t.execByIDs(ctx, "UPDATE transcripts SET archived = 0 WHERE id IN", ids)
}

// RestoreAllArchived un-archives every archived record.
func (t *transcriptStore) RestoreAllArchived(ctx context.Context) (int, error) {
	return t.execCounted(ctx, "UPDATE transcripts SET archived = 0 WHERE archived = 1")
}

// ArchiveExcluded archives all non-archived records whose selection is
// excluded.
func (t *transcriptStore) ArchiveExcluded(ctx context.Context) (int, error) {
	return t.execCounted(ctx,
		"UPDATE transcripts SET archived = 1 WHERE archived = 0 AND selected = ?",
		int(domain.SelectionExcluded))
}

// ArchiveExported archives all non-archived records that have been
// exported.
func (t *transcriptStore) ArchiveExported(ctx context.Context) (int, error) {
	return t.execCounted(ctx,
		"UPDATE transcripts SET archived = 1 WHERE archived = 0 AND exported_at IS NOT NULL")
}

// MarkExported stamps the given records with the export time.
func (t *transcriptStore) MarkExported(ctx context.Context, ids []string, exportedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := "UPDATE transcripts SET exported_at = ? WHERE id IN (" + placeholders(len(ids)) + ")"
	args := make([]any, 0, len(ids)+1)
	args = append(args, exportedAt.UTC())
	for _, id := range ids {
		args = append(args, id)
	}
	if _, err := t.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("marking exported: %w", err)
	}
	return nil
}

// Reset deletes every record. The only physical delete in the store.
func (t *transcriptStore) Reset(ctx context.Context) error {
	if _, err := t.store.db.ExecContext(ctx, "DELETE FROM transcripts"); err != nil {
		return fmt.Errorf("resetting transcripts: %w", err)
	}
	return nil
}

// execByIDs runs an UPDATE whose WHERE clause is an IN list of IDs.
func (t *transcriptStore) execByIDs(ctx context.Context, queryPrefix string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := queryPrefix + " (" + placeholders(len(ids)) + ")"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	if _, err := t.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating transcripts: %w", err)
	}
	return nil
}

// execCounted runs an UPDATE and returns the affected row count.
func (t *transcriptStore) execCounted(ctx context.Context, query string, args ...any) (int, error) {
	result, err := t.store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating transcripts: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting affected rows: %w", err)
	}
	return int(affected), nil
}

// attachCredentials loads the credential associations for the given
// records in one query.
func (t *transcriptStore) attachCredentials(ctx context.Context, records []*domain.TranscriptRecord) error {
	if len(records) == 0 {
		return nil
	}

	byID := make(map[string]*domain.TranscriptRecord, len(records))
	args := make([]any, 0, len(records))
	for _, record := range records {
		byID[record.ID] = record
		args = append(args, record.ID)
	}

	rows, err := t.store.db.QueryContext(ctx, `
		SELECT transcript_id, credential_id FROM transcript_credentials
		WHERE transcript_id IN (`+placeholders(len(records))+`)
		ORDER BY credential_id
	`, args...)
	if err != nil {
		return fmt.Errorf("querying credential associations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var transcriptID, credentialID string
		if err := rows.Scan(&transcriptID, &credentialID); err != nil {
			return fmt.Errorf("scanning association: %w", err)
		}
		if record, ok := byID[transcriptID]; ok {
			record.CredentialIDs = append(record.CredentialIDs, credentialID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating associations: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTranscript reads one transcript row.
func scanTranscript(row scanner) (*domain.TranscriptRecord, error) {
	var record domain.TranscriptRecord
	var participantsJSON, scope string
	var selected, archived int
	var occurredAt, exportedAt sql.NullTime
	var createdAt sql.NullTime

	err := row.Scan(&record.ID, &record.ExternalID, &record.Title,
		&record.RawContent, &participantsJSON, &occurredAt,
		&record.LengthMinutes, &record.ContentLength, &record.SourceDetail,
		&scope, &selected, &archived, &exportedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning transcript: %w", err)
	}

	if err := json.Unmarshal([]byte(participantsJSON), &record.Participants); err != nil {
		return nil, fmt.Errorf("unmarshaling participants: %w", err)
	}

	record.Scope = domain.MeetingScope(scope)
	record.Selected = domain.Selection(selected)
	record.Archived = archived != 0
	if occurredAt.Valid {
		occurred := occurredAt.Time
		record.OccurredAt = &occurred
	}
	if exportedAt.Valid {
		exported := exportedAt.Time
		record.ExportedAt = &exported
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}

	return &record, nil
}

// ==================== Credential Store ====================

// credentialStore implements driven.CredentialStore.
type credentialStore struct {
	store *Store
}

var _ driven.CredentialStore = (*credentialStore)(nil)

// Save stores or updates a credential.
func (c *credentialStore) Save(ctx context.Context, cred domain.Credential) error {
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = time.Now().UTC()
	}

	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO credentials (id, label, api_key, owner_email, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			api_key = excluded.api_key,
			owner_email = excluded.owner_email,
			enabled = excluded.enabled
	`, cred.ID, cred.Label, cred.APIKey, cred.OwnerEmail, boolInt(cred.Enabled), cred.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	return nil
}

// Get retrieves a credential by ID.
func (c *credentialStore) Get(ctx context.Context, id string) (*domain.Credential, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT id, label, api_key, owner_email, enabled, created_at
		FROM credentials WHERE id = ?
	`, id)

	cred, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cred, nil
}

// List returns all credentials.
func (c *credentialStore) List(ctx context.Context) ([]domain.Credential, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT id, label, api_key, owner_email, enabled, created_at
		FROM credentials ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.Credential //nolint:prealloc // size unknown from query
	for rows.Next() {
		cred, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		creds = append(creds, *cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credentials: %w", err)
	}
	return creds, nil
}

// SetEnabled flips the enabled flag for a credential.
func (c *credentialStore) SetEnabled(ctx context.Context, id string, enabled bool) error {
	result, err := c.store.db.ExecContext(ctx,
		"UPDATE credentials SET enabled = ? WHERE id = ?", boolInt(enabled), id)
	if err != nil {
		return fmt.Errorf("updating credential: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a credential.
func (c *credentialStore) Delete(ctx context.Context, id string) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM credentials WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

// scanCredential reads one credential row.
func scanCredential(row scanner) (*domain.Credential, error) {
	var cred domain.Credential
	var enabled int
	var createdAt sql.NullTime

	err := row.Scan(&cred.ID, &cred.Label, &cred.APIKey, &cred.OwnerEmail, &enabled, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning credential: %w", err)
	}

	cred.Enabled = enabled != 0
	if createdAt.Valid {
		cred.CreatedAt = createdAt.Time
	}
	return &cred, nil
}

// ==================== Helpers ====================

// placeholders builds a "?, ?, ?" list of n placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// nullTime converts an optional time to its SQL representation.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// boolInt converts a bool to the 0/1 SQLite convention.
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
