package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BaoChess/internal/game/core"
)

func newTestBus() *EventBus {
	bus := NewEventBus()
	bus.SetLogger(zerolog.Nop())
	return bus
}

func TestEventBus(t *testing.T) {
	bus := newTestBus()

	// Test function handler
	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", "", 600, true))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
	assert.False(t, receivedEvent.Timestamp().IsZero())
}

func TestEventBus_FuncHandlersRunInOrder(t *testing.T) {
	bus := newTestBus()
	var order []int

	bus.SubscribeFunc(TypeMoveApplied, func(Event) { order = append(order, 1) })
	bus.SubscribeFunc(TypeMoveApplied, func(Event) { order = append(order, 2) })

	bus.Publish(NewMoveAppliedEvent("g", 1, core.White, core.Pawn, core.MustSquare("e2"), core.MustSquare("e4"), "e4"))

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeMoveApplied))
}

func TestEventBus_UnsubscribeFunc(t *testing.T) {
	bus := newTestBus()
	calls := 0

	id := bus.SubscribeFunc(TypeClockExpired, func(Event) { calls++ })
	other := bus.SubscribeFunc(TypeClockExpired, func(Event) {})
	assert.NotEqual(t, id, other)

	bus.Unsubscribe(id)
	bus.Publish(NewClockExpiredEvent("g", core.White))

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, bus.GetFuncHandlerCount(TypeClockExpired))
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := newTestBus()

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameStarted:   true,
			TypeStatusChanged: true,
		},
	}
	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewGameStartedEvent("test-game", "", 600, true))
	bus.Publish(NewOrientationFlippedEvent("test-game", core.WhiteBottom, core.BlackBottom, true))
	bus.Publish(NewStatusChangedEvent("test-game", "active", "draw", "stalemate"))

	// Should only receive GameStarted and StatusChanged
	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeStatusChanged, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewGameStartedEvent("test-game", "", 600, true))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

func TestEventBus_PanickingHandlerIsIsolated(t *testing.T) {
	bus := newTestBus()
	reached := false

	bus.SubscribeFunc(TypeEffectCompleted, func(Event) { panic("boom") })
	bus.SubscribeFunc(TypeEffectCompleted, func(Event) { reached = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewEffectCompletedEvent("g", "fx-1"))
	})
	assert.True(t, reached)
}

func TestEventBus_HandlerMayPublish(t *testing.T) {
	bus := newTestBus()
	var got []string

	bus.SubscribeFunc(TypeMoveApplied, func(e Event) {
		got = append(got, e.Type())
		bus.Publish(NewStatusChangedEvent(e.GameID(), "active", "white_won", "checkmate"))
	})
	bus.SubscribeFunc(TypeStatusChanged, func(e Event) { got = append(got, e.Type()) })

	bus.Publish(NewMoveAppliedEvent("g", 4, core.Black, core.Queen, core.MustSquare("d8"), core.MustSquare("h4"), "Qh4#"))

	assert.Equal(t, []string{TypeMoveApplied, TypeStatusChanged}, got)
}
