package events

// Event type constants
const (
	// Resolution lifecycle
	EventTypePhaseEntered       EventType = "phase_entered"
	EventTypeResolutionComplete EventType = "resolution_complete"
	EventTypeResolutionFailed   EventType = "resolution_failed"

	// Attempt events
	EventTypeBeforeAttemptRoll EventType = "before_attempt_roll"
	EventTypeAfterAttemptRoll  EventType = "after_attempt_roll"

	// Effect events
	EventTypeBeforeEffect    EventType = "before_effect"
	EventTypeOnMagnitudeRoll EventType = "on_magnitude_roll"
	EventTypeAfterEffect     EventType = "after_effect"

	// Saving throw events
	EventTypeAfterSavingThrow EventType = "after_saving_throw"
)

// Priority levels for listener order
const (
	PriorityPreCalculation  = 0   // Set base values
	PriorityRules           = 100 // Rule modules
	PriorityStatusEffects   = 200 // Conditions
	PriorityTemporary       = 400 // One-off bonuses
	PriorityPostCalculation = 500 // Caps, limits
	PriorityObservers       = 900 // Logging, tracing, chat
)
