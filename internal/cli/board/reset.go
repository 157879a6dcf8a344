package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every card and restore default settings",
		Long:  "Empty all seven columns and restore the default theme (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	st := cliInstance.App.Store
	removed := st.CardCount()

	if !force && !formatter.Quiet && !formatter.JSON {
		prompt := "Delete all jobs and reset settings? This cannot be undone."
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	st.Reset()

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success":       true,
			"cards_removed": removed,
		})
	}

	formatter.Printf("✓ Board reset (%d cards removed)\n", removed)
	return nil
}
