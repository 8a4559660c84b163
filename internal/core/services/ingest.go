package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/minutes-cli/internal/backoff"
	"github.com/custodia-labs/minutes-cli/internal/connectors/meetnotes"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// CooldownWindow is how long a recording must have existed before it is
// ingested. Recordings are not considered final until this elapses.
const CooldownWindow = 2 * time.Hour

// Ensure Ingestor implements the interface.
var _ driving.Ingestor = (*Ingestor)(nil)

// Ingestor coordinates transcript ingestion runs.
type Ingestor struct {
	credentials driven.CredentialStore
	store       driven.TranscriptStore
	factory     driven.ProviderFactory

	saveRetries int
	saveDelay   time.Duration
	now         func() time.Time
}

// NewIngestor creates an ingestion orchestrator.
func NewIngestor(
	credentials driven.CredentialStore,
	store driven.TranscriptStore,
	factory driven.ProviderFactory,
) *Ingestor {
	return &Ingestor{
		credentials: credentials,
		store:       store,
		factory:     factory,
		saveRetries: backoff.MaxRetries,
		saveDelay:   backoff.InitialDelay,
		now:         time.Now,
	}
}

// Run ingests all new recordings visible to the credential.
//
// The run is resilient: per-record failures are counted into the summary
// and reported through the sink. Only the initial account lookup and
// cancellation abort the run with an error.
//
//nolint:gocognit,gocyclo // Orchestration function with necessary sequential steps
func (o *Ingestor) Run(
	ctx context.Context,
	credentialID string,
	sink driven.ProgressSink,
) (domain.RunSummary, error) {
	var summary domain.RunSummary
	if sink == nil {
		sink = driven.NopProgress
	}

	// 1. Resolve credential and account. The owner's email domain feeds
	// internal/external classification; failure here is fatal.
	cred, err := o.credentials.Get(ctx, credentialID)
	if err != nil {
		return summary, fmt.Errorf("get credential: %w", err)
	}
	if !cred.Enabled {
		return summary, fmt.Errorf("credential %s: %w", cred.ID, domain.ErrCredentialDisabled)
	}

	provider := o.factory.Create(*cred)
	account, err := provider.WhoAmI(ctx)
	if err != nil {
		if meetnotes.IsUnauthorized(err) {
			return summary, fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
		}
		return summary, fmt.Errorf("resolve account: %w", err)
	}
	ownerDomain := domain.EmailDomain(account.Email)

	logger.Info("Starting ingestion for credential %s (%s)", cred.ID, account.Email)
	sink.Progress("ingesting as %s", account.Email)

	// 2. Build the notes index once, non-fatally.
	notes, complete := buildNotesIndex(ctx, provider, sink)
	if complete {
		sink.Progress("notes index ready: %d notes", len(notes))
	}

	finish := func(cancelled bool) domain.RunSummary {
		summary.Cancelled = cancelled
		sink.Progress("run finished: %s", summary)
		return summary
	}

	// 3. Main page loop over the recordings stream.
	cursor := ""
	pageNum := 0
	for {
		if ctx.Err() != nil {
			return finish(true), ctx.Err()
		}

		page, err := provider.RecordingsPage(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return finish(true), ctx.Err()
			}
			// Retries are exhausted inside the provider; stop the loop
			// and pick the stream up again on the next invocation.
			summary.Errors++
			sink.Progress("page fetch failed, stopping: %v", err)
			break
		}

		pageNum++
		sink.Progress("page %d: %d recordings", pageNum, len(page.Items))
		if len(page.Items) == 0 {
			break
		}

		for i := range page.Items {
			if ctx.Err() != nil {
				return finish(true), ctx.Err()
			}
			rec := page.Items[i]
			summary.Processed++

			switch o.processRecording(ctx, &rec, notes, cred, ownerDomain, sink) {
			case outcomeSkipped:
				summary.Skipped++
			case outcomeCreated:
				summary.Created++
			case outcomeFailed:
				if ctx.Err() != nil {
					return finish(true), ctx.Err()
				}
				summary.Errors++
			}
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	finish(false)

	// 4. A clean run means the source is drained; disable the credential
	// as a courtesy so subsequent RunAll invocations skip it.
	if summary.Clean() {
		if err := o.credentials.SetEnabled(ctx, cred.ID, false); err != nil {
			logger.Warn("disable credential %s: %v", cred.ID, err)
		} else {
			sink.Progress("credential %s drained and disabled", cred.ID)
		}
	}

	return summary, nil
}

// RunAll ingests for every enabled credential in turn and returns the
// aggregated summary. Per-credential fatal errors are collected; a
// cancellation stops the sequence immediately.
func (o *Ingestor) RunAll(ctx context.Context, sink driven.ProgressSink) (domain.RunSummary, error) {
	if sink == nil {
		sink = driven.NopProgress
	}

	creds, err := o.credentials.List(ctx)
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("list credentials: %w", err)
	}

	var total domain.RunSummary
	var errs []error
	for _, cred := range creds {
		if !cred.Enabled {
			continue
		}
		summary, err := o.Run(ctx, cred.ID, sink)
		total.Processed += summary.Processed
		total.Created += summary.Created
		total.Skipped += summary.Skipped
		total.Errors += summary.Errors
		if summary.Cancelled {
			total.Cancelled = true
			return total, err
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("credential %s: %w", cred.ID, err))
		}
	}

	if len(errs) > 0 {
		return total, errors.Join(errs...)
	}
	return total, nil
}

// recordOutcome is the per-record processing result.
type recordOutcome int

const (
	outcomeSkipped recordOutcome = iota
	outcomeCreated
	outcomeFailed
)

// processRecording applies skip rules, joins the note, checks
// idempotence and saves one recording with retry.
func (o *Ingestor) processRecording(
	ctx context.Context,
	rec *domain.Recording,
	notes map[string]domain.Note,
	cred *domain.Credential,
	ownerDomain string,
	sink driven.ProgressSink,
) recordOutcome {
	if rec.ID == "" {
		sink.Progress("skipped: recording without ID")
		return outcomeSkipped
	}

	// Recordings inside the cool-down window are not final yet; a start
	// time in the future trivially falls inside it.
	if rec.StartedAt != nil && o.now().Sub(*rec.StartedAt) < CooldownWindow {
		sink.Progress("skipped %s: started %s, still in cool-down", rec.ID, rec.StartedAt.Format(time.RFC3339))
		return outcomeSkipped
	}

	if rec.NoteID != "" {
		if note, ok := notes[rec.NoteID]; ok {
			rec.Note = &note
		}
	}

	exists, err := o.store.ExistsForCredential(ctx, rec.ID, cred.ID)
	if err != nil {
		sink.Progress("failed %s: existence check: %v", rec.ID, err)
		return outcomeFailed
	}
	if exists {
		sink.Progress("skipped %s: already stored", rec.ID)
		return outcomeSkipped
	}

	record := o.normalise(rec, ownerDomain)
	err = backoff.Retry(ctx, o.saveRetries, o.saveDelay, func() error {
		return o.store.Save(ctx, record, cred.ID)
	})
	if err != nil {
		sink.Progress("failed %s: %v", rec.ID, err)
		return outcomeFailed
	}

	sink.Progress("created %s (%s)", rec.ID, record.Title)
	return outcomeCreated
}

// normalise converts a joined recording into its canonical stored form,
// deriving participants, length, content length and meeting scope.
func (o *Ingestor) normalise(rec *domain.Recording, ownerDomain string) *domain.TranscriptRecord {
	record := &domain.TranscriptRecord{
		ID:            uuid.NewString(),
		ExternalID:    rec.ID,
		Title:         rec.Title,
		RawContent:    rec.Payload,
		OccurredAt:    rec.StartedAt,
		LengthMinutes: rec.LengthMinutes(),
		ContentLength: utf8.RuneCountInString(rec.Payload),
		SourceDetail:  rec.FolderPath,
		CreatedAt:     o.now().UTC(),
	}

	if note := rec.Note; note != nil {
		record.Participants = domain.NormaliseParticipants(note.AttendeeNames)
		record.Scope = domain.DeriveScope(note.AttendeeEmails, ownerDomain)
		if record.Title == "" {
			record.Title = note.Title
		}
		if record.SourceDetail == "" {
			record.SourceDetail = note.FolderPath
		}
	}

	return record
}
