package events

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
)

// PhaseEvent fires when a resolution enters a new state
type PhaseEvent struct {
	BaseEvent
	From string
	To   string
	Err  error
}

// NewPhaseEvent creates a phase transition event
func NewPhaseEvent(actionID, sourceID, from, to string) *PhaseEvent {
	return &PhaseEvent{
		BaseEvent: BaseEvent{Type: EventTypePhaseEntered, ActionID: actionID, SourceID: sourceID},
		From:      from,
		To:        to,
	}
}

// BeforeAttemptRollEvent lets listeners adjust an attempt roll before it is
// made. Cancelling the event only stops propagation.
type BeforeAttemptRollEvent struct {
	BaseEvent
	Formula  string
	Modifier int
}

// AfterAttemptRollEvent carries the attempt outcome for one target. TargetID
// is empty for an untargeted attempt.
type AfterAttemptRollEvent struct {
	BaseEvent
	Outcome *dice.Outcome
	Success bool
}

// BeforeEffectEvent fires before an effect is applied to a target
type BeforeEffectEvent struct {
	BaseEvent
	EffectID   string
	EffectType string
}

// MagnitudeRollEvent lets listeners adjust a damage or healing magnitude
type MagnitudeRollEvent struct {
	BaseEvent
	EffectID string
	Outcome  *dice.Outcome
	Bonus    int
	Total    int
}

// AfterEffectEvent reports the application of one effect
type AfterEffectEvent struct {
	BaseEvent
	EffectID   string
	EffectType string
	Resisted   bool
	Amount     int
	Err        error
}

// SavingThrowEvent reports a resistance save made by a target
type SavingThrowEvent struct {
	BaseEvent
	Save    string
	System  string
	Target  int
	Success bool
}

// CompletionEvent closes a resolution
type CompletionEvent struct {
	BaseEvent
	State   string
	Success bool
	Err     error
}
