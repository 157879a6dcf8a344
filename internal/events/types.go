package events

import (
	"time"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventSnapshotChanged follows every effective board mutation
	EventSnapshotChanged EventType = "snapshot_changed"
	// EventCriteriaChanged follows a change to the search/filter/sort criteria
	EventCriteriaChanged EventType = "criteria_changed"
)

// Event represents a board state change notification
type Event struct {
	Type       EventType
	CardID     string           // Card touched by the mutation, empty for settings/criteria
	ColumnID   models.ColumnID  // Column the card ended up in, when relevant
	Snapshot   *models.Snapshot // Deep copy of the board after the change (snapshot events only)
	Timestamp  time.Time        // When the event occurred
	SequenceID int64            // Monotonically increasing sequence number for ordering
}
