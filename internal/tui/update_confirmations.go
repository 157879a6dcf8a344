package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// handleDeleteConfirm handles card deletion confirmation
func (m *Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.confirmDelete()
	case "n", "N", "esc", "q":
		m.PendingDelete = nil
		m.UIState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// confirmDelete removes the pending card
func (m *Model) confirmDelete() tea.Cmd {
	card := m.PendingDelete
	m.PendingDelete = nil
	m.UIState.SetMode(state.NormalMode)
	if card == nil {
		return nil
	}

	if !m.App.Store.DeleteCard(card.ID) {
		m.refresh()
		return m.notify(state.LevelError, "⚠️ Card gone", "The card was already deleted")
	}
	m.refresh()
	return m.notify(state.LevelInfo, "🗑️ Deleted", card.Title)
}
