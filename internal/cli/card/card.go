package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "card",
		Aliases: []string{"job"},
		Short:   "Manage job cards",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(DuplicateCmd())
	cmd.AddCommand(PinCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(FindCmd())

	return cmd
}

// cardJSON is the JSON shape of a card in command output
func cardJSON(card models.Card) map[string]any {
	return map[string]any{
		"id":             card.ID,
		"title":          card.Title,
		"company":        card.Company,
		"description":    card.Description,
		"job_link":       card.JobLink,
		"min_experience": card.MinExperience,
		"tags":           tagKeys(card.Tags),
		"pinned":         card.IsPinned,
		"column":         card.ColumnID,
		"status":         card.ColumnID.Title(),
		"date_created":   card.DateCreated,
		"action_task":    card.ActionTask,
		"action_date":    card.ActionDate,
	}
}

func tagKeys(tags []models.Tag) []string {
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = tag.Key()
	}
	return keys
}
