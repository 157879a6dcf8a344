// Package drag turns pick-up/drop gestures into single store moves.
//
// A gesture is either idle or in progress. Ending a gesture always returns
// the handler to idle; only a drop on a different, known column mutates
// the board, and it does so with exactly one MoveCard call.
package drag

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// ErrInvalidGesture indicates a gesture started without a card
var ErrInvalidGesture = errors.New("drag gesture needs a card and a source column")

// State of the handler
type State int

const (
	Idle State = iota
	InProgress
)

func (s State) String() string {
	if s == InProgress {
		return "in-progress"
	}
	return "idle"
}

// Outcome describes how a gesture ended
type Outcome int

const (
	// OutcomeNone: End was called with no gesture in progress
	OutcomeNone Outcome = iota
	// OutcomeDiscarded: dropped outside any column, or cancelled
	OutcomeDiscarded
	// OutcomeSameColumn: dropped back on the originating column
	OutcomeSameColumn
	// OutcomeMoved: the card now lives in the target column
	OutcomeMoved
	// OutcomeStale: the card was no longer in its source column
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeSameColumn:
		return "same-column"
	case OutcomeMoved:
		return "moved"
	case OutcomeStale:
		return "stale"
	default:
		return "none"
	}
}

// Mover is the slice of the store the handler needs
type Mover interface {
	MoveCard(id string, src, dst models.ColumnID) (bool, error)
}

// Notification is the user-visible confirmation of a move
type Notification struct {
	Title   string
	Message string
}

// Notifier shows confirmations to the user
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Gesture is the card being dragged and where it came from
type Gesture struct {
	CardID string
	Source models.ColumnID
}

// Handler is the drag state machine
type Handler struct {
	mu       sync.Mutex
	mover    Mover
	notifier Notifier
	active   *Gesture
}

// NewHandler creates an idle handler. A nil notifier drops confirmations.
func NewHandler(mover Mover, notifier Notifier) *Handler {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Handler{mover: mover, notifier: notifier}
}

// Start records the card and its originating column. Starting while a
// gesture is in progress replaces it.
func (h *Handler) Start(cardID string, source models.ColumnID) error {
	if cardID == "" || source == "" {
		return ErrInvalidGesture
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = &Gesture{CardID: cardID, Source: source}
	slog.Debug("drag started", "card_id", cardID, "column_id", source)
	return nil
}

// End finishes the gesture over target. An empty target means the card was
// dropped outside any column.
func (h *Handler) End(target models.ColumnID) (Outcome, error) {
	h.mu.Lock()
	g := h.active
	h.active = nil
	h.mu.Unlock()

	if g == nil {
		return OutcomeNone, nil
	}
	if target == "" || !target.IsValid() {
		slog.Debug("drag discarded", "card_id", g.CardID, "target", target)
		return OutcomeDiscarded, nil
	}
	if target == g.Source {
		return OutcomeSameColumn, nil
	}

	moved, err := h.mover.MoveCard(g.CardID, g.Source, target)
	if err != nil {
		return OutcomeDiscarded, fmt.Errorf("failed to move card: %w", err)
	}
	if !moved {
		slog.Debug("drag ended on stale card", "card_id", g.CardID, "column_id", g.Source)
		return OutcomeStale, nil
	}

	h.notifier.Notify(MovedNotification(target))
	return OutcomeMoved, nil
}

// Cancel ends the gesture without a drop target
func (h *Handler) Cancel() Outcome {
	outcome, _ := h.End("")
	return outcome
}

// State reports whether a gesture is in progress
func (h *Handler) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active != nil {
		return InProgress
	}
	return Idle
}

// Active returns the gesture in progress, if any
func (h *Handler) Active() (Gesture, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active == nil {
		return Gesture{}, false
	}
	return *h.active, true
}

// MovedNotification is the confirmation shown after a successful drop
func MovedNotification(target models.ColumnID) Notification {
	return Notification{
		Title:   "✅ Card moved",
		Message: "Moved to " + target.Title(),
	}
}
