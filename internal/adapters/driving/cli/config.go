package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

var configStore driven.ConfigStore

// SetConfigStore injects the configuration store.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show known configuration values",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it immediately. Integer and
boolean values are detected; everything else is stored as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// knownConfigKeys are the keys the CLI reads. Unknown keys can still be
// set; they are just not listed by show.
var knownConfigKeys = []string{
	file.KeyProviderBaseURL,
	file.KeyProviderPageSize,
	file.KeyCaptionsBaseURL,
	file.KeyCaptionsCookie,
	file.KeyDataDir,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := append([]string(nil), knownConfigKeys...)
	sort.Strings(keys)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, key := range keys {
		val, ok := configStore.Get(key)
		if !ok {
			fmt.Fprintf(w, "%s\t(unset)\n", key)
			continue
		}
		fmt.Fprintf(w, "%s\t%v\n", key, val)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cmd.Printf("\nConfig file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("Set %s.\n", key)
	return nil
}
