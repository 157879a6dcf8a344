package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/tui/huhforms"
)

// errFormCancelled is returned when the interactive form is declined
var errFormCancelled = errors.New("cancelled")

// runForm shows the interactive card form. Tests replace it.
var runForm = func(values *huhforms.CardFormValues, settings models.Settings) error {
	form := huhforms.CreateCardForm(values, true).
		WithTheme(huhforms.CreateJobzyTheme(settings))
	if err := form.Run(); err != nil {
		return err
	}
	if !values.Confirm {
		return errFormCancelled
	}
	return nil
}

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a job to the board",
		Long: `Add a job card. Title and company are required; new cards land in the
Job List column unless --column is given.

Run without --title and --company in a terminal to fill in a form instead.

Examples:
  # Simple card (human-readable output)
  jobzy card add --title="Backend Engineer" --company="Acme"

  # Straight into a column, with tags
  jobzy card add --title="SRE" --company="Globex" --column=applied --tag remote --tag urgent

  # Quiet mode for bash capture
  CARD_ID=$(jobzy card add --title="SRE" --company="Globex" --quiet)

  # Description from stdin
  pbpaste | jobzy card add --title="SRE" --company="Globex" --description -
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	addInputFlags(cmd)
	cmd.Flags().String("column", string(models.DefaultColumnID), "Column id or title")
	cmd.Flags().Bool("pinned", false, "Pin the card")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	var in models.CardInput
	if err := applyInputFlags(cmd, &in); err != nil {
		return formatter.FailWith(err, "Valid tags are: "+cli.FormatAvailableTags())
	}
	in.IsPinned, _ = cmd.Flags().GetBool("pinned")

	columnName, _ := cmd.Flags().GetString("column")
	column, err := cli.FindColumn(columnName)
	if err != nil {
		return formatter.FailWith(err, "Available columns: "+cli.FormatAvailableColumns())
	}
	in.ColumnID = column

	needsForm := strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == ""
	if needsForm && !formatter.JSON && !formatter.Quiet && cli.IsInteractive() {
		values := huhforms.NewCardFormValues(models.Card{})
		values.Title, values.Company = in.Title, in.Company
		values.Tags, values.Column, values.Pinned = in.Tags, in.ColumnID, in.IsPinned
		values.Description, values.JobLink, values.MinExperience = in.Description, in.JobLink, in.MinExperience
		values.ActionTask, values.ActionDate = in.ActionTask, in.ActionDate

		if err := runForm(values, cliInstance.App.Store.Settings()); err != nil {
			if errors.Is(err, errFormCancelled) {
				formatter.Printf("No card added\n")
				return nil
			}
			return formatter.Fail(cli.ExitError, "FORM_ERROR", err, "")
		}
		in = values.Input()
	}

	card, err := cliInstance.App.Store.AddCard(in)
	if err != nil {
		suggestion := ""
		if errors.Is(err, models.ErrEmptyTitle) || errors.Is(err, models.ErrEmptyCompany) {
			suggestion = "Pass both --title and --company"
		}
		return formatter.FailWith(err, suggestion)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.Success(card)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success": true,
			"card":    cardJSON(card),
		})
	}

	formatter.Printf("✓ Added '%s' at %s to %s (ID: %s)\n",
		card.Title, card.Company, card.ColumnID.Title(), cli.ShortID(card.ID))
	if card.IsPinned {
		formatter.Printf("  📌 Pinned\n")
	}
	if len(card.Tags) > 0 {
		formatter.Printf("  Tags: %s\n", strings.Join(tagKeys(card.Tags), ", "))
	}
	if card.ActionTask != "" {
		formatter.Printf("  Next: %s\n", strings.TrimSpace(fmt.Sprintf("%s %s", card.ActionTask, card.ActionDate)))
	}
	return nil
}
