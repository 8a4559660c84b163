package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage stored transcript records",
	Long: `List stored transcripts and manage their lifecycle: mark them for
export, exclude them, archive them or restore them. Archiving is
always reversible; nothing is deleted except by an explicit reset.`,
	RunE: runRecordsList,
}

var recordsListAll bool

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records, newest first",
	RunE:  runRecordsList,
}

var recordsSelectCmd = &cobra.Command{
	Use:   "select <id>...",
	Short: "Mark records as included in the next export",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsSelect(cmd, args, domain.SelectionIncluded)
	},
}

var recordsExcludeCmd = &cobra.Command{
	Use:   "exclude <id>...",
	Short: "Mark records as excluded from exports",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsSelect(cmd, args, domain.SelectionExcluded)
	},
}

var recordsArchiveCmd = &cobra.Command{
	Use:   "archive <id>...",
	Short: "Archive records",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecordsArchive,
}

var recordsRestoreAll bool

var recordsRestoreCmd = &cobra.Command{
	Use:   "restore [id]...",
	Short: "Restore archived records",
	Long: `Restores archived records into the working set. Selection and export
state survive the archive round-trip. With --all, every archived
record is restored.`,
	RunE: runRecordsRestore,
}

var recordsArchiveExcludedCmd = &cobra.Command{
	Use:   "archive-excluded",
	Short: "Archive all excluded records",
	RunE:  runRecordsArchiveExcluded,
}

var recordsArchiveExportedCmd = &cobra.Command{
	Use:   "archive-exported",
	Short: "Archive all exported records",
	RunE:  runRecordsArchiveExported,
}

var recordsResetForce bool

var recordsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored record",
	Long: `Deletes all transcript records, archived ones included. This is the
only destructive operation in the store and requires --force.`,
	RunE: runRecordsReset,
}

func init() {
	recordsListCmd.Flags().BoolVar(&recordsListAll, "all", false,
		"include archived records")
	recordsRestoreCmd.Flags().BoolVar(&recordsRestoreAll, "all", false,
		"restore every archived record")
	recordsResetCmd.Flags().BoolVar(&recordsResetForce, "force", false,
		"confirm deletion of all records")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsSelectCmd)
	recordsCmd.AddCommand(recordsExcludeCmd)
	recordsCmd.AddCommand(recordsArchiveCmd)
	recordsCmd.AddCommand(recordsRestoreCmd)
	recordsCmd.AddCommand(recordsArchiveExcludedCmd)
	recordsCmd.AddCommand(recordsArchiveExportedCmd)
	recordsCmd.AddCommand(recordsResetCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}

	records, err := lifecycle.List(cmd.Context(), recordsListAll)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No records.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tOCCURRED\tMIN\tSCOPE\tSELECTED\tSTATE")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			rec.ID, rec.Title, formatTime(rec.OccurredAt),
			rec.LengthMinutes, rec.Scope, rec.Selected, recordState(rec))
	}
	return w.Flush()
}

func runRecordsSelect(cmd *cobra.Command, ids []string, selected domain.Selection) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}
	if err := lifecycle.Select(cmd.Context(), ids, selected); err != nil {
		return err
	}
	cmd.Printf("Marked %d records %s.\n", len(ids), selected)
	return nil
}

func runRecordsArchive(cmd *cobra.Command, ids []string) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}
	if err := lifecycle.Archive(cmd.Context(), ids); err != nil {
		return err
	}
	cmd.Printf("Archived %d records.\n", len(ids))
	return nil
}

func runRecordsRestore(cmd *cobra.Command, ids []string) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}

	if recordsRestoreAll {
		count, err := lifecycle.RestoreAll(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Restored %d records.\n", count)
		return nil
	}

	if len(ids) == 0 {
		return errors.New("provide record IDs or --all")
	}
	if err := lifecycle.Restore(cmd.Context(), ids); err != nil {
		return err
	}
	cmd.Printf("Restored %d records.\n", len(ids))
	return nil
}

func runRecordsArchiveExcluded(cmd *cobra.Command, _ []string) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}
	count, err := lifecycle.ArchiveExcluded(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Archived %d excluded records.\n", count)
	return nil
}

func runRecordsArchiveExported(cmd *cobra.Command, _ []string) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}
	count, err := lifecycle.ArchiveExported(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Archived %d exported records.\n", count)
	return nil
}

func runRecordsReset(cmd *cobra.Command, _ []string) error {
	if lifecycle == nil {
		return errors.New("lifecycle service not configured")
	}
	if !recordsResetForce {
		return errors.New("refusing to delete all records without --force")
	}
	if err := lifecycle.Reset(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("All records deleted.")
	return nil
}

// recordState renders the archive/export state for listing.
func recordState(rec domain.TranscriptRecord) string {
	switch {
	case rec.Archived:
		return "archived"
	case rec.ExportedAt != nil:
		return "exported"
	default:
		return "active"
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
