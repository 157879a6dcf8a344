package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(func(Event) { order = append(order, "first") })
	bus.Subscribe(func(Event) { order = append(order, "second") })

	bus.Publish(Event{Type: EventSnapshotChanged})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_SequenceIDsIncrease(t *testing.T) {
	bus := NewBus()
	var got []int64
	bus.Subscribe(func(e Event) { got = append(got, e.SequenceID) })

	for i := 0; i < 3; i++ {
		bus.Publish(Event{Type: EventCriteriaChanged})
	}

	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestBus_StampsMissingTimestamp(t *testing.T) {
	bus := NewBus()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var got []time.Time
	bus.Subscribe(func(e Event) { got = append(got, e.Timestamp) })

	explicit := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bus.Publish(Event{Type: EventSnapshotChanged})
	bus.Publish(Event{Type: EventSnapshotChanged, Timestamp: explicit})

	require.Len(t, got, 2)
	assert.Equal(t, fixed, got[0])
	assert.Equal(t, explicit, got[1])
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	bus.Publish(Event{Type: EventSnapshotChanged})
	unsubscribe()
	unsubscribe()
	bus.Publish(Event{Type: EventSnapshotChanged})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.SubscriberCount())
}

func TestBus_PanickingSubscriberDoesNotStopDelivery(t *testing.T) {
	bus := NewBus()
	delivered := false

	bus.Subscribe(func(Event) { panic("boom") })
	bus.Subscribe(func(Event) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(Event{Type: EventSnapshotChanged})
	})
	assert.True(t, delivered)
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	lateCalls := 0

	bus.Subscribe(func(Event) {
		bus.Subscribe(func(Event) { lateCalls++ })
	})

	bus.Publish(Event{Type: EventSnapshotChanged})
	assert.Equal(t, 0, lateCalls, "subscriber added mid-publish should not see the current event")

	bus.Publish(Event{Type: EventSnapshotChanged})
	assert.Equal(t, 1, lateCalls)
}

func TestNop_Publish(t *testing.T) {
	var p Publisher = Nop{}
	assert.NotPanics(t, func() { p.Publish(Event{Type: EventSnapshotChanged}) })
}
