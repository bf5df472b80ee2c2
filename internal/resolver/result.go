package resolver

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
)

// State is a step of the resolution state machine
type State string

const (
	StateCreated         State = "created"
	StateValidating      State = "validating"
	StateConsuming       State = "consuming"
	StateAttempting      State = "attempting"
	StateApplyingEffects State = "applying-effects"
	StateDone            State = "done"
	StateErrored         State = "errored"
)

// Consumed records what the consuming phase charged
type Consumed struct {
	Type       actions.ConsumptionType `json:"type,omitempty"`
	Amount     int                     `json:"amount,omitempty"`
	ItemID     string                  `json:"itemId,omitempty"`
	ActionUses int                     `json:"actionUses,omitempty"`
}

// TargetResult is the attempt outcome against one target
type TargetResult struct {
	TargetID     string        `json:"targetId"`
	Success      bool          `json:"success"`
	Roll         *dice.Outcome `json:"roll,omitempty"`
	TargetNumber int           `json:"targetNumber,omitempty"`
	Natural      int           `json:"natural,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// ResistanceResult is a target's attempt to resist an effect
type ResistanceResult struct {
	Type    actions.ResistanceType `json:"type"`
	Save    string                 `json:"save,omitempty"`
	System  string                 `json:"system,omitempty"`
	Target  int                    `json:"target"`
	Rolls   []*dice.Outcome        `json:"rolls"`
	Success bool                   `json:"success"`
}

// EffectApplication is one effect applied, resisted or failed against one
// target. TargetID is empty for an untargeted action.
type EffectApplication struct {
	EffectID    string             `json:"effectId"`
	EffectType  actions.EffectType `json:"effectType"`
	TargetID    string             `json:"targetId,omitempty"`
	Magnitude   *dice.Outcome      `json:"magnitude,omitempty"`
	Amount      int                `json:"amount,omitempty"`
	Resistance  *ResistanceResult  `json:"resistance,omitempty"`
	Resisted    bool               `json:"resisted"`
	Applied     bool               `json:"applied"`
	ConditionID string             `json:"conditionId,omitempty"`
	Output      string             `json:"output,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Result is the serializable record of one resolution
type Result struct {
	ActionID       string               `json:"actionId"`
	ActionName     string               `json:"actionName"`
	SourceID       string               `json:"sourceId"`
	State          State                `json:"state"`
	Success        bool                 `json:"success"`
	Blind          bool                 `json:"blind"`
	Flavor         string               `json:"flavor,omitempty"`
	Attempt        *dice.Outcome        `json:"attempt"`
	PerTarget      map[string]bool      `json:"perTargetResults"`
	Targets        []*TargetResult      `json:"targets"`
	Consumed       *Consumed            `json:"consumed,omitempty"`
	EffectsApplied []*EffectApplication `json:"effectsApplied"`
	Error          string               `json:"error,omitempty"`
}

// Target returns the attempt result for a target id
func (r *Result) Target(id string) *TargetResult {
	for _, t := range r.Targets {
		if t.TargetID == id {
			return t
		}
	}
	return nil
}

// EffectsFor returns the effect applications made against a target id
func (r *Result) EffectsFor(id string) []*EffectApplication {
	out := []*EffectApplication{}
	for _, e := range r.EffectsApplied {
		if e.TargetID == id {
			out = append(out, e)
		}
	}
	return out
}
