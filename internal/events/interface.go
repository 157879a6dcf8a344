package events

// Publisher is the sending side of the bus. The store depends on this
// interface only, so tests can record events without a Bus.
type Publisher interface {
	Publish(event Event)
}

// Subscriber receives events synchronously on the publisher's goroutine
type Subscriber func(event Event)

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)

// Nop discards every event
type Nop struct{}

// Publish does nothing
func (Nop) Publish(Event) {}
