package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// updateSearch feeds the search box. The board filters as the user types;
// enter keeps the term and esc clears it.
func (m *Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.SearchInput.Blur()
			m.UIState.SetMode(state.NormalMode)
			return m, nil
		case "esc":
			m.SearchInput.SetValue("")
			m.SearchInput.Blur()
			m.App.Store.SetSearchTerm("")
			m.refresh()
			m.UIState.SetMode(state.NormalMode)
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	if term := m.SearchInput.Value(); term != m.App.Store.Criteria().SearchTerm {
		m.App.Store.SetSearchTerm(term)
		m.refresh()
	}
	return m, cmd
}
