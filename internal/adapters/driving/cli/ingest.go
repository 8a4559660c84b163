package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [credential-id]",
	Short: "Ingest new transcripts from the provider",
	Long: `Fetches recordings from the notes provider and stores new transcripts
locally. If a credential ID is provided, only that credential is used.
Otherwise, every enabled credential is ingested in turn.

Recordings newer than two hours are left for a later run; already
stored recordings are skipped. Interrupting the run is safe, the next
run picks up where this one left off.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestor == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()
	sink := driven.ProgressFunc(func(format string, a ...any) {
		cmd.Printf(format+"\n", a...)
	})

	if len(args) > 0 {
		summary, err := ingestor.Run(ctx, args[0], sink)
		cmd.Printf("Done: %s\n", summary)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		return nil
	}

	summary, err := ingestor.RunAll(ctx, sink)
	cmd.Printf("Done: %s\n", summary)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	return nil
}
