package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jobzy/internal/drag"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// handleNormalMode dispatches a key press on the board
func (m *Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.Keys

	switch {
	case matches(msg, k.Quit):
		return m, tea.Quit

	// Navigation
	case matches(msg, k.PrevColumn):
		m.moveColumn(-1)
	case matches(msg, k.NextColumn):
		m.moveColumn(1)
	case matches(msg, k.PrevCard):
		m.moveCardCursor(-1)
	case matches(msg, k.NextCard):
		m.moveCardCursor(1)

	// Drag
	case matches(msg, k.PickUp):
		if m.heldCard() != "" {
			return m, m.drop()
		}
		m.pickUp()
	case matches(msg, k.Drop):
		if m.heldCard() != "" {
			return m, m.drop()
		}
		m.openOverlay(state.DetailMode)
	case matches(msg, k.Cancel):
		if m.heldCard() != "" {
			m.App.Drag.Cancel()
			return m, nil
		}
		if m.App.Store.Criteria().SearchTerm != "" {
			m.App.Store.SetSearchTerm("")
			m.SearchInput.SetValue("")
			m.refresh()
		}

	// Filters
	case matches(msg, k.Search):
		m.SearchInput.SetValue(m.App.Store.Criteria().SearchTerm)
		m.SearchInput.CursorEnd()
		m.UIState.SetMode(state.SearchMode)
		return m, m.SearchInput.Focus()
	case matches(msg, k.ToggleTag):
		return m, m.toggleTag(keyString(msg))
	case matches(msg, k.ClearTags):
		if err := m.App.Store.SetSelectedTags(nil); err != nil {
			return m, m.notifyError(err)
		}
		m.refresh()
	case matches(msg, k.ToggleSort):
		next := models.SortCompany
		if m.App.Store.Criteria().Sort == models.SortCompany {
			next = models.SortRecent
		}
		if err := m.App.Store.SetSort(next); err != nil {
			return m, m.notifyError(err)
		}
		m.refresh()
	case matches(msg, k.ToggleView):
		next := models.ViewCompact
		if m.App.Store.Criteria().ViewMode == models.ViewCompact {
			next = models.ViewFull
		}
		if err := m.App.Store.SetViewMode(next); err != nil {
			return m, m.notifyError(err)
		}
		m.refresh()

	// Cards
	case matches(msg, k.AddCard):
		return m, m.openForm(models.Card{ColumnID: m.currentView().ID}, false)
	case matches(msg, k.EditCard):
		if card, ok := m.currentCard(); ok {
			return m, m.openForm(card, true)
		}
	case matches(msg, k.PinCard):
		return m, m.togglePin()
	case matches(msg, k.DuplicateCard):
		return m, m.duplicate()
	case matches(msg, k.DeleteCard):
		if card, ok := m.currentCard(); ok {
			m.PendingDelete = &card
			m.UIState.SetMode(state.DeleteConfirmMode)
		}
	case matches(msg, k.ViewCard):
		m.openOverlay(state.DetailMode)

	// Overlays
	case matches(msg, k.ShowStats):
		m.openOverlay(state.StatsMode)
	case matches(msg, k.ShowHelp):
		m.openOverlay(state.HelpMode)
	}

	return m, nil
}

func (m *Model) moveColumn(delta int) {
	col := min(max(m.UIState.SelectedColumn()+delta, 0), len(m.views)-1)
	m.UIState.SetSelectedColumn(col)
	m.UIState.ClampSelectedCard(len(m.views[col].Cards))
}

func (m *Model) moveCardCursor(delta int) {
	n := len(m.currentView().Cards)
	if n == 0 {
		return
	}
	m.UIState.SetSelectedCard(min(max(m.UIState.SelectedCard()+delta, 0), n-1))
}

// pickUp starts dragging the selected card
func (m *Model) pickUp() {
	card, ok := m.currentCard()
	if !ok {
		return
	}
	// Start only fails without a card or column, both known here
	_ = m.App.Drag.Start(card.ID, card.ColumnID)
}

// drop ends the gesture over the selected column. The cursor follows a
// moved card when it is still visible.
func (m *Model) drop() tea.Cmd {
	g, _ := m.App.Drag.Active()
	outcome, err := m.App.Drag.End(m.currentView().ID)
	m.refresh()
	if err != nil {
		return m.notifyError(err)
	}

	switch outcome {
	case drag.OutcomeMoved:
		m.selectCard(g.CardID)
		return m.flushNotices()
	case drag.OutcomeStale:
		return m.notify(state.LevelError, "⚠️ Card gone", "The card was moved or deleted")
	}
	return nil
}

// toggleTag flips the tag bound to a digit key, 1 being the first tag
func (m *Model) toggleTag(digit string) tea.Cmd {
	tags := models.AllTags()
	if len(digit) != 1 {
		return nil
	}
	i := int(digit[0] - '1')
	if i < 0 || i >= len(tags) {
		return nil
	}
	if err := m.App.Store.ToggleTag(tags[i]); err != nil {
		return m.notifyError(err)
	}
	m.refresh()
	return nil
}

func (m *Model) togglePin() tea.Cmd {
	card, ok := m.currentCard()
	if !ok {
		return nil
	}
	if _, err := m.App.Store.ToggleCardPin(card.ID); err != nil {
		return m.notifyError(err)
	}
	m.refresh()
	m.selectCard(card.ID)
	return nil
}

func (m *Model) duplicate() tea.Cmd {
	card, ok := m.currentCard()
	if !ok {
		return nil
	}
	dup, ok := m.App.Store.DuplicateCard(card.ID)
	if !ok {
		return nil
	}
	m.refresh()
	m.selectCard(dup.ID)
	return m.notify(state.LevelInfo, "📋 Duplicated", dup.Title)
}

// openOverlay shows a full screen panel. Details need a selected card.
func (m *Model) openOverlay(mode state.Mode) {
	if mode == state.DetailMode {
		if _, ok := m.currentCard(); !ok {
			return
		}
	}
	m.UIState.SetMode(mode)
}

// handleOverlayKey closes help, stats and details
func (m *Model) handleOverlayKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.Keys.Quit) && keyString(msg) == "ctrl+c":
		return m, tea.Quit
	case matches(msg, m.Keys.EditCard) && m.UIState.Mode() == state.DetailMode:
		if card, ok := m.currentCard(); ok {
			return m, m.openForm(card, true)
		}
	case matches(msg, m.Keys.Cancel), matches(msg, m.Keys.Quit), matches(msg, m.Keys.Drop),
		matches(msg, m.Keys.ShowHelp), matches(msg, m.Keys.ShowStats), matches(msg, m.Keys.ViewCard):
		m.UIState.SetMode(state.NormalMode)
	}
	return m, nil
}
