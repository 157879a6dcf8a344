package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/tui/layers"
	"github.com/thenoetrevino/jobzy/internal/tui/notifications"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// View renders the board with the modal of the current mode on top
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = layers.Compose(m.viewBoard(), m.modalLayer())
	return view
}

// viewBoard renders header, criteria line, columns and status bar, cut to
// the terminal height.
func (m *Model) viewBoard() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewCriteria(),
		"",
		m.viewColumns(),
	)

	lines := strings.Split(content, "\n")
	if maxLines := max(m.UIState.Height()-2, 1); len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n\n" + m.viewStatusBar()
}

func (m *Model) viewHeader() string {
	title := m.Styles.Title.Render("💼 jobzy")
	count := m.Styles.Company.Render(pluralize(m.App.Store.CardCount(), "job", "jobs"))
	return spread(m.UIState.Width(), title, count)
}

// viewCriteria shows the search box, the tag filters with their digit keys,
// and the sort and view toggles.
func (m *Model) viewCriteria() string {
	c := m.App.Store.Criteria()

	var search string
	switch {
	case m.UIState.Mode() == state.SearchMode:
		search = m.SearchInput.View()
	case c.SearchTerm != "":
		search = m.Styles.Status.Render("🔍 " + c.SearchTerm)
	default:
		search = m.Styles.Muted.Render(displayKey(m.Keys.Search.Keys()[0]) + " search")
	}

	chips := make([]string, 0, len(models.AllTags()))
	for i, tag := range models.AllTags() {
		style := m.Styles.Tag
		if containsTag(c.SelectedTags, tag) {
			style = m.Styles.ActiveTag
		}
		chips = append(chips, style.Render(fmt.Sprintf("%d %s", i+1, tag.Label())))
	}

	toggles := m.Styles.Company.Render(fmt.Sprintf("sort: %s · view: %s", c.Sort, c.ViewMode))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		search, "   ", strings.Join(chips, " "), "   ", toggles)
}

// viewStatusBar shows the current notification, the held card, or hints
func (m *Model) viewStatusBar() string {
	if n, ok := m.NotificationState.Current(); ok {
		return notifications.RenderInline(m.Styles, n)
	}

	if id := m.heldCard(); id != "" {
		card, _ := m.App.Store.Card(id)
		return m.Styles.Status.Render(fmt.Sprintf("✋ Holding %q", card.Title)) +
			m.Styles.Company.Render(fmt.Sprintf("  move to a column and press %s · %s to cancel",
				displayKey(m.Keys.PickUp.Keys()[0]), displayKey(m.Keys.Cancel.Keys()[0])))
	}

	left := m.Styles.Company.Render("jobzy · job application tracker")
	right := m.Styles.Company.Render(fmt.Sprintf("press %s for help", displayKey(m.Keys.ShowHelp.Keys()[0])))
	return spread(m.UIState.Width(), left, right)
}

// spread places left and right at the edges of a line of width
func spread(width int, left, right string) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func containsTag(tags []models.Tag, tag models.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
