// Package guide holds the command that prints the user guide.
package guide

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/markdown"
	"github.com/thenoetrevino/jobzy/internal/models"
)

//go:embed guide.md
var guideMarkdown string

// Markdown returns the raw guide
func Markdown() string {
	return guideMarkdown
}

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show how the board, tags and keys work",
		Args:  cobra.NoArgs,
		RunE:  runGuide,
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source")

	return cmd
}

func runGuide(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
		return err
	}

	// Only the theme mode is read from the board
	mode := models.DefaultSettings().Theme.Mode
	if c, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
		mode = c.App.Store.Settings().Theme.Mode
		_ = c.Close()
	}

	tty := cli.OutputIsTerminal()
	width := cli.TerminalWidth(80)
	formatter.Printf("%s\n", markdown.Render(guideMarkdown, markdown.Style(mode, tty), width))
	return nil
}
