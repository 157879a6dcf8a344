package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/tui/huhforms"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// maxFormWidth is the widest the card form gets
const maxFormWidth = 64

func formWidth(screenWidth int) int {
	if screenWidth <= 0 {
		return maxFormWidth
	}
	return max(min(screenWidth-6, maxFormWidth), 20)
}

// openForm shows the add form, prefilled with card's column, or the edit
// form for card.
func (m *Model) openForm(card models.Card, editing bool) tea.Cmd {
	m.FormValues = huhforms.NewCardFormValues(card)
	m.EditingID = ""
	if editing {
		m.EditingID = card.ID
	}

	m.Form = huhforms.CreateCardForm(m.FormValues, !editing).
		WithTheme(huhforms.CreateJobzyTheme(m.App.Store.Settings())).
		WithWidth(formWidth(m.UIState.Width()))
	m.UIState.SetMode(state.FormMode)
	return m.Form.Init()
}

// closeForm returns to the board
func (m *Model) closeForm() {
	m.Form = nil
	m.FormValues = nil
	m.EditingID = ""
	m.UIState.SetMode(state.NormalMode)
}

// updateForm forwards messages to the open form and saves it on completion
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Form == nil {
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "ctrl+s":
			m.FormValues.Confirm = true
			m.Form.State = huh.StateCompleted
		}
	}

	var cmd tea.Cmd
	if m.Form.State == huh.StateNormal {
		model, formCmd := m.Form.Update(msg)
		if f, ok := model.(*huh.Form); ok {
			m.Form = f
		}
		cmd = formCmd
	}

	switch m.Form.State {
	case huh.StateCompleted:
		saveCmd := m.saveForm()
		m.closeForm()
		return m, saveCmd
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// saveForm writes the form values to the store when the user confirmed
func (m *Model) saveForm() tea.Cmd {
	v := m.FormValues
	if !v.Confirm {
		return nil
	}
	input := v.Input()

	if m.EditingID == "" {
		card, err := m.App.Store.AddCard(input)
		if err != nil {
			slog.Error("error adding card", "error", err)
			return m.notifyError(err)
		}
		m.refresh()
		if !m.selectCard(card.ID) {
			return m.notify(state.LevelInfo, "✅ Job added", card.Title+" is hidden by the current filters")
		}
		return m.notify(state.LevelInfo, "✅ Job added", card.Title)
	}

	current, ok := m.App.Store.Card(m.EditingID)
	if !ok {
		return m.notify(state.LevelError, "⚠️ Card gone", "The card was deleted while editing")
	}
	updated := current.ApplyInput(input)
	found, err := m.App.Store.UpdateCard(updated)
	if err != nil {
		slog.Error("error updating card", "card_id", updated.ID, "error", err)
		return m.notifyError(err)
	}
	if !found {
		return m.notify(state.LevelError, "⚠️ Card gone", "The card was deleted while editing")
	}
	m.refresh()
	m.selectCard(updated.ID)
	return m.notify(state.LevelInfo, "✅ Job updated", updated.Title)
}
