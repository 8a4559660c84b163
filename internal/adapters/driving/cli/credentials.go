package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage provider credentials",
	Long: `Manage the API credentials used for ingestion. A credential is
disabled automatically once an error-free run drains its source;
re-enable it to ingest again.`,
	RunE: runCredentialsList,
}

var (
	credentialsAddLabel  string
	credentialsAddAPIKey string
)

var credentialsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a credential",
	RunE:  runCredentialsAdd,
}

var credentialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List credentials",
	RunE:  runCredentialsList,
}

var credentialsEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a credential for ingestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCredentialsSetEnabled(cmd, args[0], true)
	},
}

var credentialsDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCredentialsSetEnabled(cmd, args[0], false)
	},
}

var credentialsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a credential",
	Args:  cobra.ExactArgs(1),
	RunE:  runCredentialsRemove,
}

func init() {
	credentialsAddCmd.Flags().StringVar(&credentialsAddLabel, "label", "",
		"human-readable label")
	credentialsAddCmd.Flags().StringVar(&credentialsAddAPIKey, "api-key", "",
		"provider API key")
	_ = credentialsAddCmd.MarkFlagRequired("api-key")

	credentialsCmd.AddCommand(credentialsAddCmd)
	credentialsCmd.AddCommand(credentialsListCmd)
	credentialsCmd.AddCommand(credentialsEnableCmd)
	credentialsCmd.AddCommand(credentialsDisableCmd)
	credentialsCmd.AddCommand(credentialsRemoveCmd)
	rootCmd.AddCommand(credentialsCmd)
}

func runCredentialsAdd(cmd *cobra.Command, _ []string) error {
	if credentialStore == nil {
		return errors.New("credential store not configured")
	}

	cred := domain.Credential{
		ID:      uuid.NewString(),
		Label:   credentialsAddLabel,
		APIKey:  credentialsAddAPIKey,
		Enabled: true,
	}
	if err := credentialStore.Save(cmd.Context(), cred); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	cmd.Printf("Added credential %s.\n", cred.ID)
	return nil
}

func runCredentialsList(cmd *cobra.Command, _ []string) error {
	if credentialStore == nil {
		return errors.New("credential store not configured")
	}

	creds, err := credentialStore.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		cmd.Println("No credentials. Add one with 'minutes credentials add'.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tOWNER\tENABLED")
	for _, cred := range creds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
			cred.ID, cred.Label, cred.OwnerEmail, cred.Enabled)
	}
	return w.Flush()
}

func runCredentialsSetEnabled(cmd *cobra.Command, id string, enabled bool) error {
	if credentialStore == nil {
		return errors.New("credential store not configured")
	}
	if err := credentialStore.SetEnabled(cmd.Context(), id, enabled); err != nil {
		return err
	}
	if enabled {
		cmd.Printf("Credential %s enabled.\n", id)
	} else {
		cmd.Printf("Credential %s disabled.\n", id)
	}
	return nil
}

func runCredentialsRemove(cmd *cobra.Command, args []string) error {
	if credentialStore == nil {
		return errors.New("credential store not configured")
	}
	if err := credentialStore.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Credential %s removed.\n", args[0])
	return nil
}
