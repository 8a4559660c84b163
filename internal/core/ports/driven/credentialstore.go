package driven

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// CredentialStore persists provider credentials.
type CredentialStore interface {
	// Save stores or updates a credential.
	Save(ctx context.Context, cred domain.Credential) error

	// Get retrieves a credential by ID.
	Get(ctx context.Context, id string) (*domain.Credential, error)

	// List returns all credentials.
	List(ctx context.Context) ([]domain.Credential, error)

	// SetEnabled flips the enabled flag for a credential.
	SetEnabled(ctx context.Context, id string, enabled bool) error

	// Delete removes a credential.
	Delete(ctx context.Context, id string) error
}
