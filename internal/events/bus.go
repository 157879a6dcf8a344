package events

import (
	"log/slog"
	"sync"
	"time"
)

// Bus fans events out to subscribers in subscription order.
// Publish is synchronous: it returns once every subscriber has run.
type Bus struct {
	mu           sync.Mutex
	subscribers  []subscription
	nextID       int
	lastSequence int64
	now          func() time.Time
}

type subscription struct {
	id int
	fn Subscriber
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (b *Bus) Subscribe(fn Subscriber) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subscribers = append(b.subscribers, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subscribers {
			if s.id == id {
				b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Publish stamps the event with a sequence number (and a timestamp when
// missing) and delivers it to every subscriber.
// A panicking subscriber is logged and skipped.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	b.lastSequence++
	event.SequenceID = b.lastSequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	subs := make([]subscription, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, s := range subs {
		deliver(s.fn, event)
	}
}

// SubscriberCount returns the number of registered subscribers
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

func deliver(fn Subscriber, event Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event subscriber panicked",
				"event_type", event.Type,
				"sequence_id", event.SequenceID,
				"panic", r)
		}
	}()
	fn(event)
}
