// Package tui is the interactive kanban board.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/jobzy/internal/app"
	"github.com/thenoetrevino/jobzy/internal/drag"
	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/filter"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/theme"
	"github.com/thenoetrevino/jobzy/internal/tui/huhforms"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// eventBuffer is how many store events may queue while the board is busy.
// Events past it are dropped; the next refresh reads the whole store anyway.
const eventBuffer = 16

// Model is the board's Bubble Tea model
type Model struct {
	Ctx    context.Context
	App    *app.App
	Keys   KeyMap
	Styles theme.Styles

	UIState           *state.UIState
	NotificationState *state.NotificationState

	SearchInput textinput.Model

	Form       *huh.Form
	FormValues *huhforms.CardFormValues
	EditingID  string // empty while adding

	// PendingDelete is the card awaiting delete confirmation
	PendingDelete *models.Card

	// views are the visible columns, rebuilt after every store change
	views []filter.ColumnView

	eventChan   chan events.Event
	unsubscribe func()
	notices     []drag.Notification
}

// New builds the board over a. The model installs itself as the app's drag
// notifier; call Close when the program exits.
func New(ctx context.Context, a *app.App) *Model {
	search := textinput.New()
	search.Placeholder = "title or company"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := &Model{
		Ctx:               ctx,
		App:               a,
		Keys:              NewKeyMap(a.Config.KeyMappings),
		UIState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		SearchInput:       search,
		eventChan:         make(chan events.Event, eventBuffer),
	}

	m.unsubscribe = a.Bus.Subscribe(func(e events.Event) {
		select {
		case m.eventChan <- e:
		default:
			slog.Debug("board event dropped", "type", e.Type, "sequence", e.SequenceID)
		}
	})
	a.SetNotifier(drag.NotifierFunc(func(n drag.Notification) {
		m.notices = append(m.notices, n)
	}))

	m.refresh()
	return m
}

// Close detaches the model from the app
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.App.SetNotifier(nil)
}

// Init starts listening for store events
func (m *Model) Init() tea.Cmd {
	return m.listen()
}

// Views returns the columns as currently rendered
func (m *Model) Views() []filter.ColumnView {
	return m.views
}

// refresh rebuilds the visible columns and styles from the store and keeps
// the selection inside them.
func (m *Model) refresh() {
	m.Styles = theme.NewStyles(m.App.Store.Settings())
	m.views = m.App.Store.VisibleColumns()

	col := min(max(m.UIState.SelectedColumn(), 0), len(m.views)-1)
	m.UIState.SetSelectedColumn(col)
	m.UIState.ClampSelectedCard(len(m.views[col].Cards))
}

// currentView returns the selected column
func (m *Model) currentView() filter.ColumnView {
	return m.views[m.UIState.SelectedColumn()]
}

// currentCard returns the selected card, if the selected column has any
func (m *Model) currentCard() (models.Card, bool) {
	view := m.currentView()
	i := m.UIState.SelectedCard()
	if i < 0 || i >= len(view.Cards) {
		return models.Card{}, false
	}
	return view.Cards[i], true
}

// selectCard moves the cursor onto the card with id, wherever it is shown.
// Returns false when the card is filtered out or gone.
func (m *Model) selectCard(id string) bool {
	for c, view := range m.views {
		for i, card := range view.Cards {
			if card.ID == id {
				m.UIState.SetSelectedColumn(c)
				m.UIState.SetSelectedCard(i)
				return true
			}
		}
	}
	return false
}

// heldCard returns the id of the card being dragged, or ""
func (m *Model) heldCard() string {
	g, ok := m.App.Drag.Active()
	if !ok {
		return ""
	}
	return g.CardID
}
