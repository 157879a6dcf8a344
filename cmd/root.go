package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/board"
	"github.com/thenoetrevino/jobzy/internal/cli/card"
	"github.com/thenoetrevino/jobzy/internal/cli/export"
	"github.com/thenoetrevino/jobzy/internal/cli/guide"
	"github.com/thenoetrevino/jobzy/internal/cli/settings"
	"github.com/thenoetrevino/jobzy/internal/cli/stats"
	"github.com/thenoetrevino/jobzy/internal/launcher"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the jobzy command tree. Without a subcommand it opens
// the interactive board.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "jobzy",
		Short: "jobzy - A terminal kanban board for job applications",
		Long: `jobzy tracks job applications on a kanban board, from the first
bookmark to the offer. Run it without arguments for the interactive board,
or use the subcommands from scripts and agents.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				cmd.SetContext(cli.WithConfigPath(cmd.Context(), configPath))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/jobzy/config.yaml)")

	rootCmd.AddCommand(
		card.CardCmd(),
		board.BoardCmd(),
		board.ResetCmd(),
		settings.SettingsCmd(),
		export.ExportCmd(),
		stats.StatsCmd(),
		guide.GuideCmd(),
	)
	return rootCmd
}

// Execute runs the command line
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
