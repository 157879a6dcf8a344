package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a card",
		Long:    "Delete a card by id or unique id prefix (requires confirmation unless --force, --json or --quiet).",
		Args:    cobra.ExactArgs(1),
		RunE:    runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	card, err := cli.ResolveCard(cliInstance.App.Store, args[0])
	if err != nil {
		return formatter.FailWith(err, "Use 'jobzy card list' to see card ids")
	}

	// Ask for confirmation unless forced or driven by a script
	if !force && !formatter.Quiet && !formatter.JSON {
		prompt := fmt.Sprintf("Delete '%s' at %s?", card.Title, card.Company)
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if !cliInstance.App.Store.DeleteCard(card.ID) {
		return formatter.FailWith(cli.ErrCardNotFound, "")
	}

	// Output success
	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"card_id": card.ID,
		})
	}

	formatter.Printf("✓ Deleted '%s' at %s\n", card.Title, card.Company)
	return nil
}
