// Package cli implements the cobra command tree for the minutes CLI.
// Services are injected by the entrypoint through the Set* functions
// before Execute runs.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services. Nil until the entrypoint wires them; commands
// guard against running unconfigured.
var (
	ingestor        driving.Ingestor
	lifecycle       driving.LifecycleManager
	exporter        driving.Exporter
	credentialStore driven.CredentialStore
	captionFetcher  driven.CaptionFetcher
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "minutes",
	Short: "Ingest and manage meeting transcripts",
	Long: `minutes ingests meeting transcripts from a notes provider into a
local SQLite database, where they can be reviewed, selected, archived
and exported as a ZIP archive.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose output")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetIngestor injects the ingestion orchestrator.
func SetIngestor(i driving.Ingestor) {
	ingestor = i
}

// SetLifecycleManager injects the record lifecycle service.
func SetLifecycleManager(l driving.LifecycleManager) {
	lifecycle = l
}

// SetExporter injects the export service.
func SetExporter(e driving.Exporter) {
	exporter = e
}

// SetCredentialStore injects the credential store.
func SetCredentialStore(s driven.CredentialStore) {
	credentialStore = s
}

// SetCaptionFetcher injects the caption fetcher.
func SetCaptionFetcher(f driven.CaptionFetcher) {
	captionFetcher = f
}

// Execute runs the root command. The context is propagated to command
// handlers so a signal-cancelled context stops a running ingestion.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
