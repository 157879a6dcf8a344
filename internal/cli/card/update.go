package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit the fields of a card",
		Long: `Edit a card in place. Only the flags you pass are changed; --tag replaces
all tags and --clear-tags removes them. Use 'card move' to change columns.

Examples:
  jobzy card update 1a2b --title="Senior Backend Engineer"
  jobzy card update 1a2b --tag follow-up --action-task="Email recruiter" --action-date=2024-05-01
  jobzy card update 1a2b --clear-tags --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	addInputFlags(cmd)
	cmd.Flags().Bool("clear-tags", false, "Remove all tags")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	st := cliInstance.App.Store
	card, err := cli.ResolveCard(st, args[0])
	if err != nil {
		return formatter.FailWith(err, "Use 'jobzy card list' to see card ids")
	}

	in := card.Input()
	if err := applyInputFlags(cmd, &in); err != nil {
		return formatter.FailWith(err, "Valid tags are: "+cli.FormatAvailableTags())
	}
	if clearTags, _ := cmd.Flags().GetBool("clear-tags"); clearTags {
		in.Tags = nil
	}

	updated := card.ApplyInput(in)
	found, err := st.UpdateCard(updated)
	if err != nil {
		return formatter.FailWith(err, "")
	}
	if !found {
		return formatter.FailWith(cli.ErrCardNotFound, "")
	}
	updated, _ = st.Card(card.ID)

	if formatter.Quiet {
		return formatter.Success(updated)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"card":    cardJSON(updated),
		})
	}

	formatter.Printf("✓ Updated '%s' at %s (ID: %s)\n", updated.Title, updated.Company, cli.ShortID(updated.ID))
	return nil
}
