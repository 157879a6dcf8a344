package state

import "time"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo is used for confirmations such as a card move
	LevelInfo NotificationLevel = iota
	// LevelError is used for rejected operations
	LevelError
)

// DefaultNotificationTTL is how long a notification stays in the status line
const DefaultNotificationTTL = 4 * time.Second

// Notification represents a single status line message.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Title   string
	Message string
}

// NotificationState holds the notification shown in the status line.
// A newer notification replaces the current one.
type NotificationState struct {
	current *Notification
	nextID  int
}

// NewNotificationState creates a NotificationState with nothing to show.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows a notification and returns its id, used to expire it later.
func (s *NotificationState) Add(level NotificationLevel, title, message string) int {
	s.nextID++
	s.current = &Notification{
		ID:      s.nextID,
		Level:   level,
		Title:   title,
		Message: message,
	}
	return s.nextID
}

// Expire clears the notification with id. A newer notification is kept.
func (s *NotificationState) Expire(id int) {
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
}

// Clear removes the current notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification to show, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// HasAny returns true if there is a notification to show.
func (s *NotificationState) HasAny() bool {
	return s.current != nil
}
