// Package board holds the whole-board commands: a read-only view of every
// column and the reset command.
package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/styles"
	"github.com/thenoetrevino/jobzy/internal/filter"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print every column of the board",
		Long: `Print the board column by column, with the same filtering, sorting and
empty-state messages as the interactive board.

Examples:
  jobzy board
  jobzy board --compact
  jobzy board --tag dream-job --sort company
  jobzy board --json
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	cli.AddCriteriaFlags(cmd)
	cmd.Flags().Bool("compact", false, "One line per card")
	cmd.Flags().Bool("full", false, "Show next actions and dates under each card")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
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
	if compact, _ := cmd.Flags().GetBool("compact"); compact {
		criteria.ViewMode = models.ViewCompact
	}
	if full, _ := cmd.Flags().GetBool("full"); full {
		criteria.ViewMode = models.ViewFull
	}

	views := filter.Columns(st.Columns(), criteria)

	if formatter.Quiet {
		for _, view := range views {
			for _, card := range view.Cards {
				fmt.Fprintln(cmd.OutOrStdout(), card.ID)
			}
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"columns": columnsJSON(views),
		})
	}

	styles.Init(st.Settings())
	for i, view := range views {
		if i > 0 {
			formatter.Printf("\n")
		}
		formatter.Printf("%s\n", header(view, criteria))
		if len(view.Cards) == 0 {
			formatter.Printf("   %s\n", styles.MutedStyle.Render(view.Message))
			continue
		}
		for _, card := range view.Cards {
			formatter.Printf("%s\n", styles.RenderCardLine(card, cli.ShortID(card.ID)))
			if criteria.ViewMode == models.ViewCompact {
				continue
			}
			details := card.DateCreated.Local().Format("Jan 2")
			if next := styles.NextAction(card); next != "" {
				details += " · " + next
			}
			formatter.Printf("             %s\n", styles.MutedStyle.Render(details))
		}
	}
	return nil
}

// header renders "📋 Job List (3)", or "(1/3)" when a filter hides cards
func header(view filter.ColumnView, criteria models.Criteria) string {
	count := fmt.Sprintf("(%d)", view.Total)
	if criteria.IsFiltering() {
		count = fmt.Sprintf("(%d/%d)", len(view.Cards), view.Total)
	}
	return fmt.Sprintf("%s %s %s", view.Icon, styles.TitleStyle.Render(view.Title), styles.MutedStyle.Render(count))
}

func columnsJSON(views []filter.ColumnView) []map[string]any {
	out := make([]map[string]any, len(views))
	for i, view := range views {
		cards := make([]map[string]any, len(view.Cards))
		for j, card := range view.Cards {
			tags := make([]string, len(card.Tags))
			for k, tag := range card.Tags {
				tags[k] = tag.Key()
			}
			cards[j] = map[string]any{
				"id":          card.ID,
				"title":       card.Title,
				"company":     card.Company,
				"tags":        tags,
				"pinned":      card.IsPinned,
				"action_task": card.ActionTask,
				"action_date": card.ActionDate,
			}
		}
		column := map[string]any{
			"id":      view.ID,
			"title":   view.Title,
			"total":   view.Total,
			"visible": len(view.Cards),
			"pinned":  view.Pinned,
			"cards":   cards,
		}
		if view.Message != "" {
			column["message"] = view.Message
		}
		out[i] = column
	}
	return out
}
