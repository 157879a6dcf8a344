package store

import (
	"github.com/thenoetrevino/jobzy/internal/filter"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// Columns returns a deep copy of every column in board order
func (s *Store) Columns() []models.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneColumns(s.columns)
}

// Column returns a deep copy of one column
func (s *Store) Column(id models.ColumnID) (models.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ci := s.columnIndex(id)
	if ci < 0 {
		return models.Column{}, false
	}
	return s.columns[ci].Clone(), true
}

// Card looks a card up across all columns
func (s *Store) Card(id string) (models.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ci, i := s.locate(id)
	if ci < 0 {
		return models.Card{}, false
	}
	return s.columns[ci].Cards[i].Clone(), true
}

// Settings returns the current settings
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Snapshot returns a deep copy of the persisted portion of the state
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// CardCount returns the number of cards on the board
func (s *Store) CardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, col := range s.columns {
		n += len(col.Cards)
	}
	return n
}

// VisibleColumns runs the filter pipeline over every column with the
// current criteria
func (s *Store) VisibleColumns() []filter.ColumnView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Columns(s.columns, s.criteria)
}
