// Package memory provides in-memory store implementations used by
// service tests and as reference semantics for the SQLite adapter.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure TranscriptStore implements the interface.
var _ driven.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore is an in-memory implementation of driven.TranscriptStore.
type TranscriptStore struct {
	mu         sync.RWMutex
	records    map[string]*domain.TranscriptRecord
	byExternal map[string]string
}

// NewTranscriptStore creates a new in-memory transcript store.
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{
		records:    make(map[string]*domain.TranscriptRecord),
		byExternal: make(map[string]string),
	}
}

// ExistsForCredential reports whether the external ID is stored and
// associated with the credential.
func (s *TranscriptStore) ExistsForCredential(_ context.Context, externalID, credentialID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byExternal[externalID]
	if !ok {
		return false, nil
	}
	return s.records[id].HasCredential(credentialID), nil
}

// Save inserts a new record or associates the credential with the
// existing one, leaving stored content untouched.
func (s *TranscriptStore) Save(_ context.Context, record *domain.TranscriptRecord, credentialID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byExternal[record.ExternalID]; ok {
		existing := s.records[id]
		if !existing.HasCredential(credentialID) {
			existing.CredentialIDs = append(existing.CredentialIDs, credentialID)
		}
		return nil
	}

	clone := *record
	clone.CredentialIDs = []string{credentialID}
	s.records[clone.ID] = &clone
	s.byExternal[clone.ExternalID] = clone.ID
	return nil
}

// Get retrieves a record by internal ID.
func (s *TranscriptStore) Get(_ context.Context, id string) (*domain.TranscriptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

// List returns records newest first.
func (s *TranscriptStore) List(_ context.Context, includeArchived bool) ([]domain.TranscriptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.TranscriptRecord
	for _, rec := range s.records {
		if rec.Archived && !includeArchived {
			continue
		}
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// SetSelection updates the selection for the given records.
func (s *TranscriptStore) SetSelection(_ context.Context, ids []string, selected domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			rec.Selected = selected
		}
	}
	return nil
}

// ArchiveByIDs archives the given records.
func (s *TranscriptStore) ArchiveByIDs(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			rec.Archived = true
		}
	}
	return nil
}

// RestoreByIDs un-archives the given records.
func (s *TranscriptStore) RestoreByIDs(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			rec.Archived = false
		}
	}
	return nil
}

// RestoreAllArchived un-archives every archived record.
func (s *TranscriptStore) RestoreAllArchived(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, rec := range s.records {
		if rec.Archived {
			rec.Archived = false
			count++
		}
	}
	return count, nil
}

// ArchiveExcluded archives all non-archived excluded records.
func (s *TranscriptStore) ArchiveExcluded(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, rec := range s.records {
		if !rec.Archived && rec.Selected == domain.SelectionExcluded {
			rec.Archived = true
			count++
		}
	}
	return count, nil
}

// ArchiveExported archives all non-archived exported records.
func (s *TranscriptStore) ArchiveExported(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, rec := range s.records {
		if !rec.Archived && rec.ExportedAt != nil {
			rec.Archived = true
			count++
		}
	}
	return count, nil
}

// MarkExported stamps the given records with the export time.
func (s *TranscriptStore) MarkExported(_ context.Context, ids []string, exportedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			t := exportedAt
			rec.ExportedAt = &t
		}
	}
	return nil
}

// Reset deletes every record.
func (s *TranscriptStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]*domain.TranscriptRecord)
	s.byExternal = make(map[string]string)
	return nil
}
