// Package store holds the single authoritative board state and every
// operation that changes it. Each effective mutation publishes one
// snapshot-changed event; operations on unknown cards are silent no-ops.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/jobzy/internal/drag"
	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// Store is the Board State Store. It is safe for concurrent use, though the
// application only ever drives it from one goroutine at a time.
type Store struct {
	mu        sync.RWMutex
	columns   []models.Column
	settings  models.Settings
	criteria  models.Criteria
	publisher events.Publisher

	now      func() time.Time
	newID    func() string
	pinLimit int
}

// New creates a store seeded with initial. A nil publisher discards events.
func New(initial models.Snapshot, publisher events.Publisher, opts ...Option) *Store {
	if publisher == nil {
		publisher = events.Nop{}
	}

	columns := models.CloneColumns(initial.Columns)
	if len(columns) == 0 {
		columns = models.DefaultColumns()
	}
	settings := initial.Settings
	if models.ValidateSettings(settings) != nil {
		settings = models.DefaultSettings()
	}

	s := &Store{
		columns:   columns,
		settings:  settings,
		criteria:  models.DefaultCriteria(),
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddCard validates in and appends a new card to its column
// (job-list when no column is given). A pinned card is refused with
// ErrPinLimitReached when the column is already at the cap.
func (s *Store) AddCard(in models.CardInput) (models.Card, error) {
	if err := models.ValidateCardInput(in); err != nil {
		return models.Card{}, err
	}
	columnID := in.ColumnID
	if columnID == "" {
		columnID = models.DefaultColumnID
	}

	s.mu.Lock()
	ci := s.columnIndex(columnID)
	if ci < 0 {
		s.mu.Unlock()
		return models.Card{}, fmt.Errorf("%w: %q", ErrUnknownColumn, string(columnID))
	}
	if in.IsPinned && !s.pinAllowed(ci) {
		err := s.pinLimitError(ci)
		s.mu.Unlock()
		return models.Card{}, err
	}

	card := models.Card{
		ID:          s.uniqueID(),
		ColumnID:    columnID,
		DateCreated: s.now(),
	}.ApplyInput(in)

	s.columns[ci].Cards = append(s.columns[ci].Cards, card)
	event := s.snapshotEvent(card.ID, columnID)
	s.mu.Unlock()

	slog.Debug("card added", "card_id", card.ID, "column_id", columnID)
	s.publisher.Publish(event)
	return card.Clone(), nil
}

// UpdateCard replaces the editable fields of the card with card.ID.
// ID, DateCreated and ColumnID of the stored card are kept.
// Returns false when no such card exists. Pinning a card through an
// update is subject to the same cap as ToggleCardPin.
func (s *Store) UpdateCard(card models.Card) (bool, error) {
	in := card.Input()
	in.ColumnID = ""
	if err := models.ValidateCardInput(in); err != nil {
		return false, err
	}

	s.mu.Lock()
	if ci, i := s.locate(card.ID); ci >= 0 && in.IsPinned && !s.columns[ci].Cards[i].IsPinned && !s.pinAllowed(ci) {
		err := s.pinLimitError(ci)
		s.mu.Unlock()
		return true, err
	}
	found := false
	var columnID models.ColumnID
	for ci := range s.columns {
		for i := range s.columns[ci].Cards {
			if s.columns[ci].Cards[i].ID != card.ID {
				continue
			}
			s.columns[ci].Cards[i] = s.columns[ci].Cards[i].ApplyInput(in)
			columnID = s.columns[ci].ID
			found = true
		}
	}
	if !found {
		s.mu.Unlock()
		slog.Debug("update ignored, card not found", "card_id", card.ID)
		return false, nil
	}
	event := s.snapshotEvent(card.ID, columnID)
	s.mu.Unlock()

	slog.Debug("card updated", "card_id", card.ID, "column_id", columnID)
	s.publisher.Publish(event)
	return true, nil
}

// DeleteCard removes the card from whichever column holds it
func (s *Store) DeleteCard(id string) bool {
	s.mu.Lock()
	ci, i := s.locate(id)
	if ci < 0 {
		s.mu.Unlock()
		slog.Debug("delete ignored, card not found", "card_id", id)
		return false
	}
	columnID := s.columns[ci].ID
	s.columns[ci].Cards = removeAt(s.columns[ci].Cards, i)
	event := s.snapshotEvent(id, columnID)
	s.mu.Unlock()

	slog.Debug("card deleted", "card_id", id, "column_id", columnID)
	s.publisher.Publish(event)
	return true
}

// DuplicateCard appends a copy of the card to the same column with a new id,
// the current time and " (Copy)" appended to the title. The copy of a pinned
// card arrives unpinned when the column is already at the pin cap.
func (s *Store) DuplicateCard(id string) (models.Card, bool) {
	s.mu.Lock()
	ci, i := s.locate(id)
	if ci < 0 {
		s.mu.Unlock()
		slog.Debug("duplicate ignored, card not found", "card_id", id)
		return models.Card{}, false
	}

	dup := s.columns[ci].Cards[i].Clone()
	dup.ID = s.uniqueID()
	dup.DateCreated = s.now()
	dup.Title += models.DuplicateTitleSuffix
	if dup.IsPinned && !s.pinAllowed(ci) {
		dup.IsPinned = false
	}

	s.columns[ci].Cards = append(s.columns[ci].Cards, dup)
	columnID := s.columns[ci].ID
	event := s.snapshotEvent(dup.ID, columnID)
	s.mu.Unlock()

	slog.Debug("card duplicated", "card_id", id, "copy_id", dup.ID, "column_id", columnID)
	s.publisher.Publish(event)
	return dup.Clone(), true
}

// MoveCard removes the card from src and appends it to dst.
// Returns false without changing anything when the card is not in src.
// src and dst may be equal, which re-appends the card at the end of the column.
// A pinned card is refused with ErrPinLimitReached when dst is already at the cap.
func (s *Store) MoveCard(id string, src, dst models.ColumnID) (bool, error) {
	s.mu.Lock()
	di := s.columnIndex(dst)
	if di < 0 {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: %q", ErrUnknownColumn, string(dst))
	}
	si := s.columnIndex(src)
	if si < 0 {
		s.mu.Unlock()
		slog.Debug("move ignored, unknown source column", "card_id", id, "column_id", src)
		return false, nil
	}
	i := s.columns[si].IndexOf(id)
	if i < 0 {
		s.mu.Unlock()
		slog.Debug("move ignored, card not in source column", "card_id", id, "column_id", src)
		return false, nil
	}
	if si != di && s.columns[si].Cards[i].IsPinned && !s.pinAllowed(di) {
		err := s.pinLimitError(di)
		s.mu.Unlock()
		return false, err
	}

	s.columns, _ = drag.Relocate(s.columns, id, src, dst)
	event := s.snapshotEvent(id, dst)
	s.mu.Unlock()

	slog.Debug("card moved", "card_id", id, "from", src, "column_id", dst)
	s.publisher.Publish(event)
	return true, nil
}

// ToggleCardPin flips the pinned flag of the card. Pinning fails with
// ErrPinLimitReached when the column is already at the configured cap.
// Returns false when no such card exists.
func (s *Store) ToggleCardPin(id string) (bool, error) {
	s.mu.Lock()
	ci, i := s.locate(id)
	if ci < 0 {
		s.mu.Unlock()
		slog.Debug("pin ignored, card not found", "card_id", id)
		return false, nil
	}

	col := &s.columns[ci]
	if !col.Cards[i].IsPinned && !s.pinAllowed(ci) {
		err := s.pinLimitError(ci)
		s.mu.Unlock()
		return true, err
	}
	col.Cards[i].IsPinned = !col.Cards[i].IsPinned
	pinned := col.Cards[i].IsPinned
	event := s.snapshotEvent(id, col.ID)
	s.mu.Unlock()

	slog.Debug("card pin toggled", "card_id", id, "column_id", event.ColumnID, "pinned", pinned)
	s.publisher.Publish(event)
	return true, nil
}

// UpdateSettings validates and replaces the settings wholesale
func (s *Store) UpdateSettings(settings models.Settings) error {
	if err := models.ValidateSettings(settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	event := s.snapshotEvent("", "")
	s.mu.Unlock()

	slog.Debug("settings updated", "mode", settings.Theme.Mode, "primary_color", settings.Theme.PrimaryColor)
	s.publisher.Publish(event)
	return nil
}

// snapshotEvent must be called with the write lock held
func (s *Store) snapshotEvent(cardID string, columnID models.ColumnID) events.Event {
	snap := s.snapshotLocked()
	return events.Event{
		Type:      events.EventSnapshotChanged,
		CardID:    cardID,
		ColumnID:  columnID,
		Snapshot:  &snap,
		Timestamp: s.now(),
	}
}

func (s *Store) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		Columns:  models.CloneColumns(s.columns),
		Settings: s.settings,
	}
}

func (s *Store) columnIndex(id models.ColumnID) int {
	for i := range s.columns {
		if s.columns[i].ID == id {
			return i
		}
	}
	return -1
}

// locate returns the column and card index of id, or -1, -1
func (s *Store) locate(id string) (int, int) {
	for ci := range s.columns {
		if i := s.columns[ci].IndexOf(id); i >= 0 {
			return ci, i
		}
	}
	return -1, -1
}

// pinAllowed reports whether column ci can take one more pinned card
func (s *Store) pinAllowed(ci int) bool {
	return s.pinLimit <= 0 || s.columns[ci].PinnedCount() < s.pinLimit
}

func (s *Store) pinLimitError(ci int) error {
	return fmt.Errorf("%w: %d pinned in %s", ErrPinLimitReached, s.pinLimit, s.columns[ci].Title)
}

// maxIDAttempts bounds how often an injected generator may repeat itself
const maxIDAttempts = 100

// uniqueID asks the generator for an id not yet on the board. A generator
// that keeps colliding falls back to a random uuid.
func (s *Store) uniqueID() string {
	for range maxIDAttempts {
		if id := s.newID(); id != "" && !s.hasID(id) {
			return id
		}
	}
	slog.Warn("id generator kept colliding, using a random id", "attempts", maxIDAttempts)
	for {
		if id := uuid.NewString(); !s.hasID(id) {
			return id
		}
	}
}

func (s *Store) hasID(id string) bool {
	ci, _ := s.locate(id)
	return ci >= 0
}

func removeAt(cards []models.Card, i int) []models.Card {
	out := make([]models.Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}

// Reset replaces the whole board, settings included, with the first-run default
func (s *Store) Reset() {
	s.mu.Lock()
	def := models.DefaultSnapshot()
	s.columns = def.Columns
	s.settings = def.Settings
	event := s.snapshotEvent("", "")
	s.mu.Unlock()

	slog.Info("board reset")
	s.publisher.Publish(event)
}
