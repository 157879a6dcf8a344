package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// recordingPublisher records every published event for verification in tests
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingPublisher) ofType(t events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recordingPublisher) snapshotEvents() []events.Event {
	return r.ofType(events.EventSnapshotChanged)
}

// sequentialIDs returns an id generator yielding card-1, card-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("card-%d", n)
	}
}

// steppingClock returns a clock that advances one minute per call
func steppingClock() func() time.Time {
	t := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newTestStore(opts ...Option) (*Store, *recordingPublisher) {
	pub := &recordingPublisher{}
	opts = append([]Option{WithIDGenerator(sequentialIDs()), WithClock(steppingClock())}, opts...)
	return New(models.DefaultSnapshot(), pub, opts...), pub
}

func validInput(title, company string) models.CardInput {
	return models.CardInput{Title: title, Company: company}
}
