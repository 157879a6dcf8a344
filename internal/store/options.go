package store

import (
	"time"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for DateCreated
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how new card ids are produced
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithPinLimit caps the number of pinned cards per column. Zero means no cap.
func WithPinLimit(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.pinLimit = n
		}
	}
}

// WithCriteria sets the initial display criteria
func WithCriteria(c models.Criteria) Option {
	return func(s *Store) {
		s.criteria = c.Clone()
	}
}
