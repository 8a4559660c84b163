package driven

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

// Page is one page of a cursor-paginated provider listing.
// An empty NextCursor means the stream is exhausted.
type Page[T any] struct {
	// Items holds the page's records in provider order.
	Items []T

	// NextCursor is the opaque continuation token for the next page.
	NextCursor string
}

// ProviderAccount identifies the account behind a credential.
type ProviderAccount struct {
	// Email is the account owner's email address.
	Email string

	// Name is the account owner's display name.
	Name string
}

// MeetingProvider fetches recordings and notes from the transcript
// provider on behalf of one credential. Implementations rate-limit and
// retry internally; a returned error means retries were exhausted.
type MeetingProvider interface {
	// WhoAmI resolves the credential owner's account. Called once per
	// ingestion run; an authentication failure here aborts the run.
	WhoAmI(ctx context.Context) (*ProviderAccount, error)

	// NotesPage fetches one page of the notes stream.
	// Pass an empty cursor for the first page.
	NotesPage(ctx context.Context, cursor string) (*Page[domain.Note], error)

	// RecordingsPage fetches one page of the recordings stream.
	// Pass an empty cursor for the first page.
	RecordingsPage(ctx context.Context, cursor string) (*Page[domain.Recording], error)
}

// ProviderFactory builds a MeetingProvider bound to one credential.
type ProviderFactory interface {
	// Create returns a provider client using the credential's API key.
	Create(cred domain.Credential) MeetingProvider
}

// ProviderFactoryFunc adapts a function to the ProviderFactory interface.
type ProviderFactoryFunc func(cred domain.Credential) MeetingProvider

// Create implements ProviderFactory.
func (f ProviderFactoryFunc) Create(cred domain.Credential) MeetingProvider {
	return f(cred)
}

// CaptionFetcher fetches machine-generated captions for a drive video.
type CaptionFetcher interface {
	// FetchCaptions downloads and parses the WebVTT caption track.
	FetchCaptions(ctx context.Context, fileID string) ([]domain.CaptionCue, error)
}
