package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/drag"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <column>",
		Short: "Move a card to another column",
		Long: `Move a card by direction or column name. This is the command line
version of dragging the card on the board.

Examples:
  # Move to next column
  jobzy card move 1a2b next

  # Move to previous column
  jobzy card move 1a2b prev

  # Move to specific column by id or title (case-insensitive)
  jobzy card move 1a2b interview
  jobzy card move 1a2b "Online Assessment"

  # JSON output for agents
  jobzy card move 1a2b offer --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// errNoAdjacentColumn is returned for next/prev at either end of the board
var errNoAdjacentColumn = errors.New("no adjacent column")

// resolveTarget turns "next", "prev" or a column name into a column id
func resolveTarget(current models.ColumnID, target string) (models.ColumnID, error) {
	ids := models.ColumnIDs()
	i := current.Index()

	switch strings.ToLower(strings.TrimSpace(target)) {
	case "next":
		if i < 0 || i+1 >= len(ids) {
			return "", fmt.Errorf("%w: card is already in the last column (%s)", errNoAdjacentColumn, current.Title())
		}
		return ids[i+1], nil
	case "prev", "previous":
		if i <= 0 {
			return "", fmt.Errorf("%w: card is already in the first column (%s)", errNoAdjacentColumn, current.Title())
		}
		return ids[i-1], nil
	}
	return cli.FindColumn(target)
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer done()

	application := cliInstance.App
	card, err := cli.ResolveCard(application.Store, args[0])
	if err != nil {
		return formatter.FailWith(err, "Use 'jobzy card list' to see card ids")
	}

	target, err := resolveTarget(card.ColumnID, args[1])
	if err != nil {
		if errors.Is(err, errNoAdjacentColumn) {
			return formatter.Fail(cli.ExitValidation, "NO_ADJACENT_COLUMN", err, "")
		}
		return formatter.FailWith(err, fmt.Sprintf("Card is currently in: %s\nAvailable columns: %s",
			card.ColumnID, cli.FormatAvailableColumns()))
	}

	var notice *drag.Notification
	application.SetNotifier(drag.NotifierFunc(func(n drag.Notification) {
		notice = &n
	}))
	defer application.SetNotifier(nil)

	if err := application.Drag.Start(card.ID, card.ColumnID); err != nil {
		return formatter.Fail(cli.ExitError, "MOVE_ERROR", err, "")
	}
	outcome, err := application.Drag.End(target)
	if err != nil {
		return formatter.FailWith(err, "")
	}

	switch outcome {
	case drag.OutcomeStale:
		return formatter.FailWith(fmt.Errorf("%w: %s", cli.ErrCardNotFound, card.ID), "")
	case drag.OutcomeDiscarded, drag.OutcomeNone:
		return formatter.FailWith(fmt.Errorf("%w: %q", models.ErrUnknownColumn, args[1]), "")
	}

	// Output success
	if formatter.Quiet {
		return formatter.Success(card)
	}
	if formatter.JSON {
		return formatter.Encode(map[string]any{
			"success":     true,
			"card_id":     card.ID,
			"from_column": card.ColumnID,
			"to_column":   target,
			"moved":       outcome == drag.OutcomeMoved,
		})
	}

	if outcome == drag.OutcomeSameColumn {
		formatter.Printf("'%s' is already in %s\n", card.Title, target.Title())
		return nil
	}
	if notice != nil {
		formatter.Printf("%s: %s\n", notice.Title, notice.Message)
	}
	return nil
}
