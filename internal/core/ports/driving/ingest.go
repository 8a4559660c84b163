package driving

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// Ingestor drives transcript ingestion runs.
type Ingestor interface {
	// Run ingests all new recordings visible to the credential.
	// The summary is always populated, including on cancellation; the
	// returned error is non-nil only for the fatal account lookup or
	// for cancellation.
	Run(ctx context.Context, credentialID string, sink driven.ProgressSink) (domain.RunSummary, error)

	// RunAll ingests for every enabled credential in turn.
	RunAll(ctx context.Context, sink driven.ProgressSink) (domain.RunSummary, error)
}
