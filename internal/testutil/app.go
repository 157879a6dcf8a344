package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jobzy/internal/app"
	"github.com/thenoetrevino/jobzy/internal/database"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// FixedTime is the clock of every app built by SetupTestApp
var FixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// SetupTestApp builds an App over a migrated in-memory database.
// Card ids are deterministic: card-0001, card-0002, ...
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err, "failed to open test database")

	seq := 0
	base := []app.Option{
		app.WithClock(func() time.Time { return FixedTime }),
		app.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("card-%04d", seq)
		}),
	}

	a, err := app.NewWithDB(ctx, db, append(base, opts...)...)
	require.NoError(t, err, "failed to build test app")

	t.Cleanup(func() {
		_ = a.Close()
		_ = db.Close()
	})
	return a
}

// CreateTestCard adds a card with the given title and company to column
func CreateTestCard(t *testing.T, a *app.App, column models.ColumnID, title, company string, tags ...models.Tag) models.Card {
	t.Helper()

	card, err := a.Store.AddCard(models.CardInput{
		Title:    title,
		Company:  company,
		ColumnID: column,
		Tags:     tags,
	})
	require.NoError(t, err, "failed to create test card")
	return card
}
