// Package stats holds the dashboard command.
package stats

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/styles"
	"github.com/thenoetrevino/jobzy/internal/stats"
	"github.com/thenoetrevino/jobzy/internal/theme"
)

// maxBar is the width of the longest per-column bar
const maxBar = 30

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show job search counters",
		Long: `Show the dashboard: total jobs, applications, interviews, offers,
rejections and pinned jobs, followed by the number of cards in each column.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	st := cliInstance.App.Store
	summary := stats.Compute(st.Columns())

	if formatter.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), summary.Total)
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"stats":   summary,
		})
	}

	settings := st.Settings()
	styles.Init(settings)
	formatter.Printf("%s\n\n", renderTiles(summary, theme.NewStyles(settings)))

	peak := 0
	for _, c := range summary.PerColumn {
		peak = max(peak, c.Count)
	}
	for _, c := range summary.PerColumn {
		formatter.Printf("%-22s %s %d\n", c.Title, bar(c.Count, peak), c.Count)
	}
	return nil
}

func renderTiles(s stats.Summary, t theme.Styles) string {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Width(16)

	tiles := s.Tiles()
	rendered := make([]string, len(tiles))
	for i, tl := range tiles {
		rendered[i] = tile.Render(fmt.Sprintf("%s %s\n%s", tl.Icon,
			t.Muted.Render(tl.Label), t.Title.Render(fmt.Sprint(tl.Value))))
	}

	// Two rows of three keep the dashboard inside 80 columns
	top := lipgloss.JoinHorizontal(lipgloss.Top, rendered[:3]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, rendered[3:]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func bar(n, peak int) string {
	if peak == 0 || n == 0 {
		return ""
	}
	width := max(1, n*maxBar/peak)
	return styles.TitleStyle.Render(strings.Repeat("█", width))
}
