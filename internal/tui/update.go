package tui

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/store"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// boardChangedMsg carries a store event into the update loop
type boardChangedMsg struct {
	event events.Event
}

// expireNotificationMsg clears the status line notification with id
type expireNotificationMsg struct {
	id int
}

// listen waits for the next store event
func (m *Model) listen() tea.Cmd {
	ch := m.eventChan
	done := m.Ctx.Done()
	return func() tea.Msg {
		select {
		case e := <-ch:
			return boardChangedMsg{event: e}
		case <-done:
			return nil
		}
	}
}

// Update handles all messages and updates the model accordingly
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		if m.Form != nil {
			m.Form = m.Form.WithWidth(formWidth(msg.Width))
		}
		return m, nil

	case boardChangedMsg:
		m.refresh()
		return m, m.listen()

	case expireNotificationMsg:
		m.NotificationState.Expire(msg.id)
		return m, nil
	}

	// Forms and the search box need every message, not only key presses
	switch m.UIState.Mode() {
	case state.FormMode:
		return m.updateForm(msg)
	case state.SearchMode:
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UIState.Mode() {
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.HelpMode, state.StatsMode, state.DetailMode:
		return m.handleOverlayKey(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

// notify shows a status line message and schedules its expiry
func (m *Model) notify(level state.NotificationLevel, title, message string) tea.Cmd {
	id := m.NotificationState.Add(level, title, message)
	return tea.Tick(state.DefaultNotificationTTL, func(time.Time) tea.Msg {
		return expireNotificationMsg{id: id}
	})
}

// notifyError reports a rejected operation
func (m *Model) notifyError(err error) tea.Cmd {
	title := "⚠️ Error"
	if errors.Is(err, store.ErrPinLimitReached) {
		title = "📌 Pin limit"
	} else if errors.Is(err, models.ErrEmptyTitle) || errors.Is(err, models.ErrEmptyCompany) {
		title = "⚠️ Invalid job"
	}
	return m.notify(state.LevelError, title, err.Error())
}

// flushNotices turns the drag confirmations collected during this update
// into status line notifications.
func (m *Model) flushNotices() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.notices {
		cmds = append(cmds, m.notify(state.LevelInfo, n.Title, n.Message))
	}
	m.notices = nil
	return tea.Batch(cmds...)
}
