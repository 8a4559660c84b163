package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is an in-memory implementation of driven.CredentialStore.
type CredentialStore struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

// NewCredentialStore creates a new in-memory credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{creds: make(map[string]domain.Credential)}
}

// Save stores or updates a credential.
func (s *CredentialStore) Save(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[cred.ID] = cred
	return nil
}

// Get retrieves a credential by ID.
func (s *CredentialStore) Get(_ context.Context, id string) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cred, nil
}

// List returns all credentials sorted by ID.
func (s *CredentialStore) List(_ context.Context) ([]domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Credential
	for _, cred := range s.creds {
		result = append(result, cred)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SetEnabled flips the enabled flag for a credential.
func (s *CredentialStore) SetEnabled(_ context.Context, id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.creds[id]
	if !ok {
		return domain.ErrNotFound
	}
	cred.Enabled = enabled
	s.creds[id] = cred
	return nil
}

// Delete removes a credential.
func (s *CredentialStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, id)
	return nil
}
