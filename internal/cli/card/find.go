package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/styles"
	"github.com/thenoetrevino/jobzy/internal/search"
)

// FindCmd returns the card find subcommand
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "Fuzzy find cards by title, company or tag",
		Long: `Fuzzy find cards across every column, best match first.
Characters of the pattern must appear in order but not next to each other,
so "bkeng" finds "Backend Engineer".

Examples:
  jobzy card find acme
  jobzy card find "sr eng" --limit 3
  jobzy card show $(jobzy card find globex --limit 1 --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: runFind,
	}

	cmd.Flags().Int("limit", 0, "Show at most this many matches (0 = all)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	limit, _ := cmd.Flags().GetInt("limit")

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	st := cliInstance.App.Store
	results := search.Find(args[0], st.Columns())
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if formatter.Quiet {
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.Card.ID)
		}
		return nil
	}
	if formatter.JSON {
		matches := make([]map[string]any, len(results))
		for i, r := range results {
			m := cardJSON(r.Card)
			m["score"] = r.Score
			matches[i] = m
		}
		return formatter.Encode(map[string]any{
			"success": true,
			"pattern": args[0],
			"matches": matches,
		})
	}

	if len(results) == 0 {
		formatter.Printf("No cards match %q\n", args[0])
		return nil
	}
	styles.Init(st.Settings())
	for _, r := range results {
		formatter.Printf("%s  %s %s\n", styles.RenderCardLine(r.Card, cli.ShortID(r.Card.ID)),
			r.Column.Icon, styles.SubtitleStyle.Render(r.Column.Title))
	}
	return nil
}
