package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/styles"
	"github.com/thenoetrevino/jobzy/internal/filter"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job cards",
		Long: `List cards column by column, filtered and sorted the way the board shows them.

Examples:
  jobzy card list
  jobzy card list --column=interview
  jobzy card list --search=acme --tag remote --sort=company
  jobzy card list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list this column (id or title)")
	cli.AddCriteriaFlags(cmd)

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	st := cliInstance.App.Store
	criteria, err := cli.CriteriaFromFlags(cmd, st.Criteria())
	if err != nil {
		return formatter.FailWith(err, "")
	}

	columns := st.Columns()
	if name, _ := cmd.Flags().GetString("column"); name != "" {
		id, err := cli.FindColumn(name)
		if err != nil {
			return formatter.FailWith(err, "Available columns: "+cli.FormatAvailableColumns())
		}
		columns = columns[id.Index() : id.Index()+1]
	}
	views := filter.Columns(columns, criteria)

	if formatter.Quiet {
		for _, view := range views {
			for _, card := range view.Cards {
				fmt.Fprintln(cmd.OutOrStdout(), card.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		cards := make([]map[string]any, 0)
		for _, view := range views {
			for _, card := range view.Cards {
				cards = append(cards, cardJSON(card))
			}
		}
		return formatter.Encode(map[string]any{
			"success": true,
			"cards":   cards,
			"count":   len(cards),
		})
	}

	styles.Init(st.Settings())
	shown := 0
	for _, view := range views {
		if len(view.Cards) == 0 {
			continue
		}
		formatter.Printf("%s %s (%d)\n", view.Icon, styles.TitleStyle.Render(view.Title), len(view.Cards))
		for _, card := range view.Cards {
			formatter.Printf("  %s\n", styles.RenderCardLine(card, cli.ShortID(card.ID)))
		}
		shown += len(view.Cards)
	}
	if shown == 0 {
		if criteria.IsFiltering() {
			formatter.Printf("No matching jobs\n")
		} else {
			formatter.Printf("No jobs yet. Add one with 'jobzy card add'\n")
		}
	}
	return nil
}
