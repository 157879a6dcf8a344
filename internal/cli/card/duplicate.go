package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
)

// DuplicateCmd returns the card duplicate subcommand
func DuplicateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "duplicate <id>",
		Aliases: []string{"dup"},
		Short:   "Copy a card into the same column",
		Long: `Copy a card. The copy gets a new id, the current time and " (Copy)"
appended to its title.

Examples:
  jobzy card duplicate 1a2b
  NEW_ID=$(jobzy card duplicate 1a2b --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: runDuplicate,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	card, err := cli.ResolveCard(cliInstance.App.Store, args[0])
	if err != nil {
		return formatter.FailWith(err, "Use 'jobzy card list' to see card ids")
	}

	dup, ok := cliInstance.App.Store.DuplicateCard(card.ID)
	if !ok {
		return formatter.FailWith(cli.ErrCardNotFound, "")
	}

	if formatter.Quiet {
		return formatter.Success(dup)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success":   true,
			"source_id": card.ID,
			"card":      cardJSON(dup),
		})
	}

	formatter.Printf("✓ Duplicated as '%s' in %s (ID: %s)\n", dup.Title, dup.ColumnID.Title(), cli.ShortID(dup.ID))
	return nil
}
