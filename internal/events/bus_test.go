package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/events"
)

func TestEventBus_MagnitudeBonus(t *testing.T) {
	bus := events.NewBus()

	bus.Subscribe(&testMagnitudeModifier{bonusAmount: 2, priority: events.PriorityStatusEffects},
		events.EventTypeOnMagnitudeRoll)

	event := &events.MagnitudeRollEvent{
		BaseEvent: events.BaseEvent{
			Type:     events.EventTypeOnMagnitudeRoll,
			ActionID: "fireball",
			SourceID: "wizard",
			TargetID: "goblin",
		},
		EffectID: "burn",
		Bonus:    1,
		Total:    13,
	}

	require.NoError(t, bus.Emit(event))
	assert.Equal(t, 15, event.Total)
	assert.Equal(t, 3, event.Bonus)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(id string, priority int) events.EventListener {
		return &events.ListenerFunc{
			Name:  id,
			Order: priority,
			Handle: func(events.Event) error {
				executionOrder = append(executionOrder, id)
				return nil
			},
		}
	}

	bus.Subscribe(record("low", 300), events.EventTypeBeforeAttemptRoll)
	bus.Subscribe(record("high", 100), events.EventTypeBeforeAttemptRoll)
	bus.Subscribe(record("medium", 200), events.EventTypeBeforeAttemptRoll)
	bus.Subscribe(record("medium-late", 200), events.EventTypeBeforeAttemptRoll)

	event := &events.BeforeAttemptRollEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeBeforeAttemptRoll},
	}
	require.NoError(t, bus.Emit(event))

	assert.Equal(t, []string{"high", "medium", "medium-late", "low"}, executionOrder)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()

	called := 0
	listener := &events.ListenerFunc{
		Name: "counter",
		Handle: func(events.Event) error {
			called++
			return nil
		},
	}
	bus.Subscribe(listener, events.EventTypePhaseEntered, events.EventTypeResolutionComplete)
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypePhaseEntered))

	require.NoError(t, bus.Emit(events.NewPhaseEvent("a", "s", "created", "validating")))
	assert.Equal(t, 1, called)

	bus.Unsubscribe(events.EventTypePhaseEntered, "counter")
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypePhaseEntered))
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeResolutionComplete))

	require.NoError(t, bus.Emit(events.NewPhaseEvent("a", "s", "validating", "consuming")))
	assert.Equal(t, 1, called)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	firstExecuted := false
	secondExecuted := false

	bus.Subscribe(&events.ListenerFunc{
		Name:  "first",
		Order: 100,
		Handle: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	}, events.EventTypeBeforeEffect)
	bus.Subscribe(&events.ListenerFunc{
		Name:  "second",
		Order: 200,
		Handle: func(events.Event) error {
			secondExecuted = true
			return nil
		},
	}, events.EventTypeBeforeEffect)

	event := &events.BeforeEffectEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeBeforeEffect},
		EffectID:  "poison",
	}
	require.NoError(t, bus.Emit(event))

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	boom := errors.New("boom")

	bus.Subscribe(&events.ListenerFunc{
		Name:   "broken",
		Handle: func(events.Event) error { return boom },
	}, events.EventTypeResolutionComplete)

	err := bus.Emit(&events.CompletionEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeResolutionComplete}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestEventBus_NilBus(t *testing.T) {
	var bus *events.Bus
	assert.NoError(t, bus.Emit(events.NewPhaseEvent("a", "s", "created", "validating")))
}

// Test helper: magnitude modifier that always adds bonus
type testMagnitudeModifier struct {
	bonusAmount int
	priority    int
}

func (m *testMagnitudeModifier) ID() string    { return "test-magnitude-modifier" }
func (m *testMagnitudeModifier) Priority() int { return m.priority }
func (m *testMagnitudeModifier) HandleEvent(e events.Event) error {
	if magnitude, ok := e.(*events.MagnitudeRollEvent); ok {
		magnitude.Bonus += m.bonusAmount
		magnitude.Total += m.bonusAmount
	}
	return nil
}
