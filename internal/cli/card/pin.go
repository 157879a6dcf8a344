package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
)

// PinCmd returns the card pin subcommand
func PinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a card",
		Long: `Toggle the pinned flag of a card. Pinned cards float to the top of their
column. Each column holds at most board.max_pinned_per_column pinned cards.`,
		Args: cobra.ExactArgs(1),
		RunE: runPin,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runPin(cmd *cobra.Command, args []string) error {
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

	found, err := st.ToggleCardPin(card.ID)
	if err != nil {
		return formatter.FailWith(err, "Unpin another card in this column first")
	}
	if !found {
		return formatter.FailWith(cli.ErrCardNotFound, "")
	}
	card, _ = st.Card(card.ID)

	if formatter.Quiet {
		return formatter.Success(card)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"card_id": card.ID,
			"pinned":  card.IsPinned,
		})
	}

	if card.IsPinned {
		formatter.Printf("📌 Pinned '%s'\n", card.Title)
	} else {
		formatter.Printf("Unpinned '%s'\n", card.Title)
	}
	return nil
}
