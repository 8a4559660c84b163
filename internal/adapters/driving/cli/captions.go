package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var captionsTimestamps bool

var captionsCmd = &cobra.Command{
	Use:   "captions <file-id>",
	Short: "Fetch machine captions for a drive video",
	Long: `Downloads the machine-generated English caption track for a drive
video and prints the cue text. Requires a session cookie configured
under captions.cookie.`,
	Args: cobra.ExactArgs(1),
	RunE: runCaptions,
}

func init() {
	captionsCmd.Flags().BoolVar(&captionsTimestamps, "timestamps", false,
		"prefix each cue with its time range")
	rootCmd.AddCommand(captionsCmd)
}

func runCaptions(cmd *cobra.Command, args []string) error {
	if captionFetcher == nil {
		return errors.New("caption fetcher not configured")
	}

	cues, err := captionFetcher.FetchCaptions(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	for _, cue := range cues {
		if captionsTimestamps {
			cmd.Printf("%s --> %s  %s\n", cue.Start, cue.End, cue.Text)
		} else {
			cmd.Println(cue.Text)
		}
	}
	return nil
}
