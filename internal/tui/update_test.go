package tui

import (
	"testing"

	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jobzy/internal/drag"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/testutil"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

func TestNavigation(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "A", "Acme")
	testutil.CreateTestCard(t, a, models.ColumnJobList, "B", "Acme")
	testutil.CreateTestCard(t, a, models.ColumnReferral, "C", "Acme")
	m.refresh()

	press(m, "h")
	assert.Equal(t, 0, m.UIState.SelectedColumn(), "stops at the first column")

	press(m, "j", "j", "j")
	assert.Equal(t, 1, m.UIState.SelectedCard(), "stops at the last card")

	press(m, "l")
	assert.Equal(t, 1, m.UIState.SelectedColumn())
	assert.Equal(t, 0, m.UIState.SelectedCard(), "clamped to the shorter column")

	press(m, "k", "right", "down")
	assert.Equal(t, 2, m.UIState.SelectedColumn())
	assert.Equal(t, 0, m.UIState.SelectedCard())

	for range models.ColumnIDs() {
		press(m, "l")
	}
	assert.Equal(t, len(models.ColumnIDs())-1, m.UIState.SelectedColumn(), "stops at the last column")
}

func TestDrag_MoveToAnotherColumn(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "space")
	assert.Equal(t, drag.InProgress, a.Drag.State())
	assert.Contains(t, content(m), `Holding "Backend"`)

	press(m, "l", "l")
	cmd := press(m, "space")
	assert.NotNil(t, cmd, "schedules the notification expiry")
	assert.Equal(t, drag.Idle, a.Drag.State())

	moved, ok := a.Store.Card(card.ID)
	require.True(t, ok)
	assert.Equal(t, models.ColumnApplied, moved.ColumnID)

	n, ok := m.NotificationState.Current()
	require.True(t, ok)
	assert.Equal(t, "✅ Card moved", n.Title)
	assert.Equal(t, "Moved to Applied", n.Message)
	assert.Contains(t, content(m), "Moved to Applied")

	// The cursor follows the card
	got, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, card.ID, got.ID)
}

func TestDrag_EnterDrops(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnInterview, "SRE", "Umbrella")
	m.refresh()
	require.True(t, m.selectCard(card.ID))

	press(m, "space", "l", "enter")

	moved, _ := a.Store.Card(card.ID)
	assert.Equal(t, models.ColumnOffer, moved.ColumnID)
}

func TestDrag_SameColumnIsNoOp(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "space", "space")

	assert.Equal(t, drag.Idle, a.Drag.State())
	got, _ := a.Store.Card(card.ID)
	assert.Equal(t, models.ColumnJobList, got.ColumnID)
	assert.False(t, m.NotificationState.HasAny())
}

func TestDrag_Cancel(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "space", "l", "esc")
	assert.Equal(t, drag.Idle, a.Drag.State())

	// Dropping after a cancel picks the card up again instead
	press(m, "h", "space")
	assert.Equal(t, drag.InProgress, a.Drag.State())
	press(m, "esc")

	got, _ := a.Store.Card(card.ID)
	assert.Equal(t, models.ColumnJobList, got.ColumnID)
	assert.False(t, m.NotificationState.HasAny())
}

func TestDrag_StaleCard(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "space")
	require.True(t, a.Store.DeleteCard(card.ID))
	press(m, "l", "space")

	assert.Equal(t, drag.Idle, a.Drag.State())
	n, ok := m.NotificationState.Current()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, 0, a.Store.CardCount())
}

func TestDrag_EmptyColumnPicksNothing(t *testing.T) {
	m, a := newTestModel(t)

	press(m, "space")
	assert.Equal(t, drag.Idle, a.Drag.State())
}

func TestFilters(t *testing.T) {
	m, a := newTestModel(t)

	press(m, "1")
	assert.Equal(t, []models.Tag{models.TagUrgent}, a.Store.Criteria().SelectedTags)

	press(m, "3")
	assert.Equal(t, []models.Tag{models.TagUrgent, models.TagDreamJob}, a.Store.Criteria().SelectedTags)

	press(m, "1")
	assert.Equal(t, []models.Tag{models.TagDreamJob}, a.Store.Criteria().SelectedTags)

	press(m, "0")
	assert.Empty(t, a.Store.Criteria().SelectedTags)

	press(m, "s")
	assert.Equal(t, models.SortCompany, a.Store.Criteria().Sort)
	press(m, "s")
	assert.Equal(t, models.SortRecent, a.Store.Criteria().Sort)

	press(m, "v", "v")
	assert.Equal(t, models.ViewFull, a.Store.Criteria().ViewMode)
}

func TestSearch(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Frontend", "Globex")
	m.refresh()

	press(m, "/")
	assert.Equal(t, state.SearchMode, m.UIState.Mode())

	press(m, "g", "l", "o")
	assert.Equal(t, "glo", a.Store.Criteria().SearchTerm)
	require.Len(t, m.Views()[0].Cards, 1)
	assert.Equal(t, "Frontend", m.Views()[0].Cards[0].Title)

	// Enter keeps the term
	press(m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, "glo", a.Store.Criteria().SearchTerm)
	assert.Contains(t, content(m), "🔍 glo")

	// Esc on the board clears it
	press(m, "esc")
	assert.Empty(t, a.Store.Criteria().SearchTerm)
	assert.Len(t, m.Views()[0].Cards, 2)

	// Esc in the search box clears it too
	press(m, "/", "x", "esc")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Empty(t, a.Store.Criteria().SearchTerm)
}

func TestPin(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "p")
	got, _ := a.Store.Card(card.ID)
	assert.True(t, got.IsPinned)
	assert.Contains(t, content(m), "📌 Backend")

	press(m, "p")
	got, _ = a.Store.Card(card.ID)
	assert.False(t, got.IsPinned)
}

func TestPin_LimitShowsError(t *testing.T) {
	m, a := newTestModel(t)
	for _, title := range []string{"A", "B", "C"} {
		c := testutil.CreateTestCard(t, a, models.ColumnJobList, title, "Acme")
		_, err := a.Store.ToggleCardPin(c.ID)
		require.NoError(t, err)
	}
	last := testutil.CreateTestCard(t, a, models.ColumnJobList, "D", "Acme")
	m.refresh()
	require.True(t, m.selectCard(last.ID))

	press(m, "p")

	got, _ := a.Store.Card(last.ID)
	assert.False(t, got.IsPinned)
	n, ok := m.NotificationState.Current()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "📌 Pin limit", n.Title)
}

func TestDuplicate(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnApplied, "Backend", "Acme")
	m.refresh()
	require.True(t, m.selectCard(card.ID))

	press(m, "y")

	assert.Equal(t, 2, a.Store.CardCount())
	got, ok := m.currentCard()
	require.True(t, ok)
	assert.NotEqual(t, card.ID, got.ID, "cursor moves to the copy")
	assert.Equal(t, "Backend", got.Title)
	assert.Equal(t, models.ColumnApplied, got.ColumnID)
}

func TestDelete(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "x")
	assert.Equal(t, state.DeleteConfirmMode, m.UIState.Mode())
	assert.Contains(t, content(m), `Delete "Backend" at Acme?`)

	press(m, "n")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, 1, a.Store.CardCount())

	press(m, "x", "y")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, 0, a.Store.CardCount())
	assert.Nil(t, m.PendingDelete)
}

func TestDelete_EmptyColumnDoesNothing(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "x")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestForm_Add(t *testing.T) {
	m, a := newTestModel(t)
	press(m, "l", "l")

	press(m, "a")
	require.Equal(t, state.FormMode, m.UIState.Mode())
	require.NotNil(t, m.Form)
	assert.Empty(t, m.EditingID)
	assert.Equal(t, models.ColumnApplied, m.FormValues.Column, "defaults to the selected column")
	assert.Contains(t, content(m), "Add job")

	m.FormValues.Title = "  Platform Engineer "
	m.FormValues.Company = "Initech"
	m.FormValues.Tags = []models.Tag{models.TagRemote}
	press(m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Nil(t, m.Form)
	require.Equal(t, 1, a.Store.CardCount())

	got, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, "Platform Engineer", got.Title)
	assert.Equal(t, models.ColumnApplied, got.ColumnID)
	assert.Equal(t, []models.Tag{models.TagRemote}, got.Tags)

	n, ok := m.NotificationState.Current()
	require.True(t, ok)
	assert.Equal(t, "✅ Job added", n.Title)
}

func TestForm_AddInvalidShowsError(t *testing.T) {
	m, a := newTestModel(t)

	press(m, "a")
	m.FormValues.Title = "Platform Engineer"
	press(m, "ctrl+s")

	assert.Equal(t, 0, a.Store.CardCount())
	n, ok := m.NotificationState.Current()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "company is required")
}

func TestForm_Edit(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnInterview, "Backend", "Acme")
	m.refresh()
	require.True(t, m.selectCard(card.ID))

	press(m, "e")
	require.Equal(t, state.FormMode, m.UIState.Mode())
	assert.Equal(t, card.ID, m.EditingID)
	assert.Equal(t, "Backend", m.FormValues.Title)
	assert.Contains(t, content(m), "Edit job")

	m.FormValues.Title = "Staff Backend"
	m.FormValues.ActionTask = "Send thank-you note"
	press(m, "ctrl+s")

	got, _ := a.Store.Card(card.ID)
	assert.Equal(t, "Staff Backend", got.Title)
	assert.Equal(t, "Send thank-you note", got.ActionTask)
	assert.Equal(t, models.ColumnInterview, got.ColumnID)
	assert.Equal(t, card.DateCreated, got.DateCreated)
}

func TestForm_EscDiscards(t *testing.T) {
	m, a := newTestModel(t)
	card := testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "e")
	m.FormValues.Title = "Changed"
	press(m, "esc")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Nil(t, m.Form)
	got, _ := a.Store.Card(card.ID)
	assert.Equal(t, "Backend", got.Title)
}

func TestForm_DeclinedConfirmDoesNotSave(t *testing.T) {
	m, a := newTestModel(t)

	press(m, "a")
	m.FormValues.Title = "Backend"
	m.FormValues.Company = "Acme"
	m.FormValues.Confirm = false
	m.Form.State = huh.StateCompleted
	m.Update(keyPress("enter"))

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, 0, a.Store.CardCount())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, " ", keyString(keyPress("space")))
	assert.Equal(t, "enter", keyString(keyPress("enter")))
	assert.Equal(t, "S", keyString(keyPress("S")))
	assert.Equal(t, "ctrl+c", keyString(keyPress("ctrl+c")))
}
