// Package settings holds the commands that read and change the board's
// appearance settings.
package settings

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/cli/styles"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/theme"
)

// errNothingToSet is returned by set without --mode or --color
var errNothingToSet = errors.New("nothing to set")

// SettingsCmd returns the settings parent command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change theme settings",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ColorsCmd())

	return cmd
}

// ShowCmd returns the settings show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the theme mode and primary color",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the settings set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the theme mode or primary color",
		Long: `Change the theme mode or primary color. The color is a palette name
(see 'jobzy settings colors') or any #RRGGBB value.

Examples:
  jobzy settings set --mode dark
  jobzy settings set --color purple
  jobzy settings set --color "#0EA5E9" --mode light
`,
		Args: cobra.NoArgs,
		RunE: runSet,
	}
	cmd.Flags().String("mode", "", "Theme mode: light or dark")
	cmd.Flags().String("color", "", "Primary color: palette name or #RRGGBB")
	cli.AddOutputFlags(cmd)
	return cmd
}

// ColorsCmd returns the settings colors subcommand
func ColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the primary color palette",
		Args:  cobra.NoArgs,
		RunE:  runColors,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func settingsJSON(s models.Settings) map[string]any {
	hsl, _ := theme.HexToHSL(s.Theme.PrimaryColor)
	return map[string]any{
		"mode":          s.Theme.Mode,
		"primary_color": s.Theme.PrimaryColor,
		"color_name":    theme.SwatchName(s.Theme.PrimaryColor),
		"hsl":           hsl,
	}
}

func printSettings(f *cli.OutputFormatter, s models.Settings) {
	styles.Init(s)
	field := func(label, value string) {
		f.Printf("%s %s\n", styles.LabelStyle.Render(fmt.Sprintf("%-14s", label+":")), value)
	}

	color := s.Theme.PrimaryColor
	if name := theme.SwatchName(color); name != "" {
		color += " (" + name + ")"
	}
	hsl, _ := theme.HexToHSL(s.Theme.PrimaryColor)

	field("Theme mode", string(s.Theme.Mode))
	field("Primary color", swatch(s.Theme.PrimaryColor)+" "+color)
	field("HSL", hsl)
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	s := cliInstance.App.Store.Settings()
	if formatter.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", s.Theme.Mode, s.Theme.PrimaryColor)
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success":  true,
			"settings": settingsJSON(s),
		})
	}

	printSettings(formatter, s)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	flags := cmd.Flags()

	if !flags.Changed("mode") && !flags.Changed("color") {
		return formatter.Fail(cli.ExitUsage, "NO_CHANGES", errNothingToSet, "Pass --mode and/or --color")
	}

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	st := cliInstance.App.Store
	s := st.Settings()

	if flags.Changed("mode") {
		raw, _ := flags.GetString("mode")
		s.Theme.Mode = models.ThemeMode(raw)
	}
	if flags.Changed("color") {
		raw, _ := flags.GetString("color")
		hex, err := theme.ResolveColor(raw)
		if err != nil {
			return formatter.FailWith(err, "Use a palette name (see 'jobzy settings colors') or #RRGGBB")
		}
		s.Theme.PrimaryColor = hex
	}

	if err := st.UpdateSettings(s); err != nil {
		return formatter.FailWith(err, "Theme mode must be light or dark")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success":  true,
			"settings": settingsJSON(s),
		})
	}

	formatter.Printf("✓ Settings updated\n")
	printSettings(formatter, s)
	return nil
}

func runColors(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	palette := theme.Palette()

	if formatter.JSON {
		colors := make([]map[string]any, len(palette))
		for i, sw := range palette {
			hsl, _ := theme.HexToHSL(sw.Hex)
			colors[i] = map[string]any{"name": sw.Name, "hex": sw.Hex, "hsl": hsl}
		}
		return formatter.Encode(map[string]any{"success": true, "colors": colors})
	}

	for _, sw := range palette {
		if formatter.Quiet {
			fmt.Fprintln(cmd.OutOrStdout(), sw.Hex)
			continue
		}
		hsl, _ := theme.HexToHSL(sw.Hex)
		formatter.Printf("%s %-7s %s  %s\n", swatch(sw.Hex), sw.Name, sw.Hex, styles.MutedStyle.Render(hsl))
	}
	return nil
}
