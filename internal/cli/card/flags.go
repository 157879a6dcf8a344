package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// addInputFlags registers the editable card fields shared by add and update
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Job title")
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("description", "", "Description, markdown supported (use - for stdin)")
	cmd.Flags().String("link", "", "Link to the job posting")
	cmd.Flags().String("min-exp", "", "Minimum experience, free text")
	cmd.Flags().StringSlice("tag", nil, "Tag: urgent, remote, dream-job, follow-up, referred (repeatable)")
	cmd.Flags().String("action-task", "", "Next action to take")
	cmd.Flags().String("action-date", "", "Due date of the next action (YYYY-MM-DD)")
}

// applyInputFlags overwrites the fields of in whose flags were set on the
// command line. Unset flags leave in untouched.
func applyInputFlags(cmd *cobra.Command, in *models.CardInput) error {
	flags := cmd.Flags()

	strField := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	strField("title", &in.Title)
	strField("company", &in.Company)
	strField("link", &in.JobLink)
	strField("min-exp", &in.MinExperience)
	strField("action-task", &in.ActionTask)
	strField("action-date", &in.ActionDate)

	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		description, err := cli.ReadText(raw, cmd.InOrStdin())
		if err != nil {
			return err
		}
		in.Description = description
	}

	if flags.Changed("tag") {
		values, _ := flags.GetStringSlice("tag")
		tags, err := cli.ParseTags(values)
		if err != nil {
			return err
		}
		in.Tags = tags
	}
	return nil
}
