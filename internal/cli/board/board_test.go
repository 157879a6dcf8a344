package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/testutil"
	"github.com/thenoetrevino/jobzy/internal/testutil/cli"
)

func TestBoard_EmptyStates(t *testing.T) {
	app := testutil.SetupTestApp(t)

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), nil)
	require.NoError(t, err)

	for _, id := range models.ColumnIDs() {
		assert.Contains(t, output, id.Title()+" (0)")
		assert.Contains(t, output, id.EmptyStateMessage())
	}
}

func TestBoard_Cards(t *testing.T) {
	app := testutil.SetupTestApp(t)
	card := testutil.CreateTestCard(t, app, models.ColumnInterview, "Backend Engineer", "Acme", models.TagDreamJob)
	testutil.CreateTestCard(t, app, models.ColumnInterview, "SRE", "Globex")
	card.ActionTask, card.ActionDate = "Prepare system design", "2025-04-02"
	_, err := app.Store.UpdateCard(card)
	require.NoError(t, err)

	t.Run("Full view shows next action", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Interview (2)")
		assert.Contains(t, output, "Backend Engineer @ Acme")
		assert.Contains(t, output, "Prepare system design (due 2025-04-02)")
	})

	t.Run("Compact view hides details", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--compact"})
		require.NoError(t, err)
		assert.Contains(t, output, "Backend Engineer @ Acme")
		assert.NotContains(t, output, "Prepare system design")
	})

	t.Run("Filtered counts and message", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--tag", "dream-job"})
		require.NoError(t, err)
		assert.Contains(t, output, "Interview (1/2)")
		assert.NotContains(t, output, "SRE @ Globex")
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--search", "globex", "--json"})
		require.NoError(t, err)

		columns := testutil.ParseJSON(t, output)["columns"].([]any)
		require.Len(t, columns, len(models.ColumnIDs()))
		interview := columns[models.ColumnInterview.Index()].(map[string]any)
		assert.Equal(t, float64(2), interview["total"])
		assert.Equal(t, float64(1), interview["visible"])
		jobList := columns[0].(map[string]any)
		assert.Equal(t, models.ColumnJobList.EmptyStateMessage(), jobList["message"])
	})

	t.Run("Invalid tag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"--tag", "hybrid"})
		assert.ErrorIs(t, err, models.ErrUnknownTag)
	})
}

func TestReset(t *testing.T) {
	app := testutil.SetupTestApp(t)
	testutil.CreateTestCard(t, app, models.ColumnApplied, "SRE", "Globex")
	testutil.CreateTestCard(t, app, models.ColumnOffer, "QA", "Initech")
	settings := app.Store.Settings()
	settings.Theme.Mode = models.ThemeDark
	require.NoError(t, app.Store.UpdateSettings(settings))

	t.Run("Declined", func(t *testing.T) {
		output, err := cli.ExecuteWithInput(t, app, ResetCmd(), nil, "no\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, 2, app.Store.CardCount())
	})

	t.Run("Forced", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ResetCmd(), []string{"--force", "--json"})
		require.NoError(t, err)
		assert.Equal(t, float64(2), testutil.ParseJSON(t, output)["cards_removed"])
		assert.Equal(t, 0, app.Store.CardCount())
		assert.Equal(t, models.DefaultSettings(), app.Store.Settings())
		assert.Len(t, app.Store.Columns(), 7)
	})
}
