package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jobzy/internal/app"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/testutil"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// newTestModel builds a sized board over a fresh in-memory app
func newTestModel(t *testing.T) (*Model, *app.App) {
	t.Helper()
	a := testutil.SetupTestApp(t)
	m := New(context.Background(), a)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	return m, a
}

// keyPress builds the message a terminal sends for k
func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

// press sends each key to the model and returns the last command
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyPress(k))
	}
	return cmd
}

func content(m *Model) string {
	return ansi.Strip(m.View().Content)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_ShowsEveryColumn(t *testing.T) {
	m, _ := newTestModel(t)

	views := m.Views()
	require.Len(t, views, len(models.ColumnIDs()))
	for i, id := range models.ColumnIDs() {
		assert.Equal(t, id, views[i].ID)
		assert.Empty(t, views[i].Cards)
		assert.Equal(t, id.EmptyStateMessage(), views[i].Message)
	}
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestNew_InstallsNotifierAndSubscribes(t *testing.T) {
	a := testutil.SetupTestApp(t)
	before := a.Bus.SubscriberCount()

	m := New(context.Background(), a)
	assert.Equal(t, before+1, a.Bus.SubscriberCount())

	m.Close()
	assert.Equal(t, before, a.Bus.SubscriberCount())
}

func TestView_LoadingBeforeSize(t *testing.T) {
	a := testutil.SetupTestApp(t)
	m := New(context.Background(), a)
	t.Cleanup(m.Close)

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Equal(t, "Loading...", view.Content)
}

func TestView_RendersBoard(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnApplied, "Backend", "Acme", models.TagRemote)
	m.refresh()

	out := content(m)
	assert.Contains(t, out, "jobzy")
	assert.Contains(t, out, "1 job")
	assert.Contains(t, out, "Job List (0)")
	assert.Contains(t, out, "Applied (1)")
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "🏠 Remote")
	assert.Contains(t, out, "press ? for help")
}

func TestView_CompactHidesTags(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme", models.TagRemote)
	m.refresh()

	press(m, "v")
	assert.Equal(t, models.ViewCompact, a.Store.Criteria().ViewMode)

	out := content(m)
	assert.Contains(t, out, "Backend")
	assert.NotContains(t, out, "🏠 Remote")
}

func TestView_FilteredHeaderCounts(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme", models.TagUrgent)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Frontend", "Globex")
	testutil.CreateTestCard(t, a, models.ColumnOffer, "Data", "Initech")
	m.refresh()

	press(m, "1")

	out := content(m)
	assert.Contains(t, out, "Job List (1/2)")
	assert.Contains(t, out, "No matching jobs")
	assert.NotContains(t, out, "Frontend")
}

func TestView_Overlays(t *testing.T) {
	m, a := newTestModel(t)
	testutil.CreateTestCard(t, a, models.ColumnJobList, "Backend", "Acme")
	m.refresh()

	press(m, "?")
	assert.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.Contains(t, content(m), "Keyboard shortcuts")
	assert.Contains(t, content(m), "pick up / drop")
	press(m, "esc")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())

	press(m, "S")
	assert.Equal(t, state.StatsMode, m.UIState.Mode())
	assert.Contains(t, content(m), "Dashboard")
	assert.Contains(t, content(m), "Total Jobs")
	press(m, "q")
	assert.Equal(t, state.NormalMode, m.UIState.Mode(), "q closes an overlay instead of quitting")

	press(m, "o")
	assert.Equal(t, state.DetailMode, m.UIState.Mode())
	assert.Contains(t, content(m), "Company")
	assert.Contains(t, content(m), "Acme")
	press(m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestView_DetailNeedsCard(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "o")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())

	press(m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	assert.True(t, isQuit(press(m, "q")))
	assert.True(t, isQuit(press(m, "ctrl+c")))
}

func TestUpdate_CancelledContextQuits(t *testing.T) {
	a := testutil.SetupTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ctx, a)
	t.Cleanup(m.Close)

	cancel()
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.True(t, isQuit(cmd))
}

func TestUpdate_StoreEventsRefreshBoard(t *testing.T) {
	m, a := newTestModel(t)
	listen := m.Init()
	require.NotNil(t, listen)

	testutil.CreateTestCard(t, a, models.ColumnInterview, "SRE", "Umbrella")
	assert.Empty(t, m.Views()[models.ColumnInterview.Index()].Cards, "not refreshed before the event is handled")

	msg := listen()
	require.IsType(t, boardChangedMsg{}, msg)

	_, next := m.Update(msg)
	assert.NotNil(t, next, "keeps listening")
	require.Len(t, m.Views()[models.ColumnInterview.Index()].Cards, 1)
}

func TestUpdate_NotificationExpires(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.notify(state.LevelInfo, "✅ Card moved", "Moved to Offer")
	require.NotNil(t, cmd)
	n, ok := m.NotificationState.Current()
	require.True(t, ok)
	assert.Contains(t, content(m), "Moved to Offer")

	m.Update(expireNotificationMsg{id: n.ID})
	assert.False(t, m.NotificationState.HasAny())
}
