package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export selected records to a ZIP archive",
	Long: `Writes every selected, non-archived record to a ZIP archive, one JSON
entry per record, and stamps the written records as exported. Records
with empty content are skipped. Without a path, a timestamped file name
is used in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exporter == nil {
		return errors.New("export service not configured")
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = fmt.Sprintf("minutes-export-%s.zip", time.Now().Format("2006-01-02"))
	}

	written, err := exporter.Export(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Wrote %d records to %s.\n", written, path)
	return nil
}
