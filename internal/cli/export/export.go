// Package export holds the command that writes the board to a CSV, JSON or YAML file.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	exporter "github.com/thenoetrevino/jobzy/internal/export"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// now is the clock used for the default file name
var now = time.Now

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every job to CSV, JSON or YAML",
		Long: `Export the board. CSV has one row per card with the column title as its
status; JSON and YAML contain the full board including settings.

The default file is jobzy-export-YYYY-MM-DD.<format> in the current directory.

Examples:
  jobzy export
  jobzy export --format json --output board.json
  jobzy export --output - | column -s, -t
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", string(exporter.FormatCSV), "csv, json or yaml")
	cmd.Flags().StringP("output", "o", "", "File to write, or - for stdout")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	rawFormat, _ := cmd.Flags().GetString("format")
	format, err := exporter.ParseFormat(rawFormat)
	if err != nil {
		return formatter.FailWith(err, "")
	}

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	snap := cliInstance.App.Store.Snapshot()

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		if err := exporter.Write(cmd.OutOrStdout(), format, snap); err != nil {
			return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "")
		}
		return nil
	}
	if output == "" {
		output = exporter.Filename(format, now())
	}

	if err := writeFile(output, format, snap); err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "Check that the directory exists and is writable")
	}

	if formatter.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"path":    output,
			"format":  format,
			"cards":   snap.CardCount(),
		})
	}

	formatter.Printf("✓ Exported %d jobs to %s\n", snap.CardCount(), output)
	return nil
}

// writeFile writes through a temp file next to path that is renamed into place
func writeFile(path string, format exporter.Format, snap models.Snapshot) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jobzy-export-*")
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = exporter.Write(tmp, format, snap); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
