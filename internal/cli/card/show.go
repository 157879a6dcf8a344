package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/styles"
	"github.com/thenoetrevino/jobzy/internal/markdown"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of a card",
		Long: `Show a card with its markdown description rendered.
The id may be shortened to any unique prefix.

Examples:
  jobzy card show 1a2b3c4d
  jobzy card show 1a2b --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet {
		return formatter.Success(card)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"card":    cardJSON(card),
		})
	}

	settings := cliInstance.App.Store.Settings()
	styles.Init(settings)
	description := markdown.Render(card.Description,
		markdown.Style(settings.Theme.Mode, cli.OutputIsTerminal()),
		styles.CardWidth-6)

	formatter.Printf("%s\n", styles.RenderCardDetail(card, card.ColumnID, description))
	return nil
}
