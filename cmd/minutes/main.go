// Command minutes is the meeting-transcript ingestion CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/minutes-cli/internal/connectors/drive"
	"github.com/custodia-labs/minutes-cli/internal/connectors/meetnotes"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/services"
)

// version is overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Ctrl-C cancels the context; a running ingestion finishes its
	// current record and reports a partial summary.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(config.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	transcripts := store.TranscriptStore()
	credentials := store.CredentialStore()

	factory := driven.ProviderFactoryFunc(func(cred domain.Credential) driven.MeetingProvider {
		return meetnotes.NewClient(
			config.GetString(file.KeyProviderBaseURL),
			cred.APIKey,
			meetnotes.WithPageSize(config.PageSize()),
		)
	})

	cli.SetVersion(version)
	cli.SetConfigStore(config)
	cli.SetCredentialStore(credentials)
	cli.SetIngestor(services.NewIngestor(credentials, transcripts, factory))
	cli.SetLifecycleManager(services.NewLifecycleService(transcripts))
	cli.SetExporter(services.NewExportService(transcripts))
	cli.SetCaptionFetcher(drive.NewCaptionClient(
		config.GetString(file.KeyCaptionsBaseURL),
		config.GetString(file.KeyCaptionsCookie),
	))

	return cli.Execute(ctx)
}
