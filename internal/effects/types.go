package effects

import (
	"time"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// ChangeMode controls how a change combines with the current value
type ChangeMode int

const (
	ModeCustom ChangeMode = iota
	ModeMultiply
	ModeAdd
	ModeDowngrade
	ModeUpgrade
	ModeOverride
)

// String returns the mode name used in logs
func (m ChangeMode) String() string {
	switch m {
	case ModeCustom:
		return "custom"
	case ModeMultiply:
		return "multiply"
	case ModeAdd:
		return "add"
	case ModeDowngrade:
		return "downgrade"
	case ModeUpgrade:
		return "upgrade"
	case ModeOverride:
		return "override"
	}
	return "unknown"
}

// Round and turn lengths in seconds (one turn is ten minutes)
const (
	SecondsPerRound = 10
	RoundsPerTurn   = 60
)

// Change modifies one actor attribute while a condition is active
type Change struct {
	Key      string     `json:"key"`
	Value    string     `json:"value"`
	Mode     ChangeMode `json:"mode"`
	Priority *int       `json:"priority,omitempty"`
}

// EffectivePriority returns the explicit priority or the mode's default
func (c Change) EffectivePriority() int {
	if c.Priority != nil {
		return *c.Priority
	}
	return int(c.Mode) * 10
}

// Duration is how long a condition lasts. All zero means indefinite.
type Duration struct {
	Rounds  int `json:"rounds,omitempty"`
	Seconds int `json:"seconds,omitempty"`
	Turns   int `json:"turns,omitempty"`
}

// IsZero reports an indefinite duration
func (d Duration) IsZero() bool {
	return d.Rounds == 0 && d.Seconds == 0 && d.Turns == 0
}

// TotalRounds converts the duration into combat rounds, rounding seconds up
func (d Duration) TotalRounds() int {
	rounds := d.Rounds + d.Turns*RoundsPerTurn
	if d.Seconds > 0 {
		rounds += (d.Seconds + SecondsPerRound - 1) / SecondsPerRound
	}
	return rounds
}

// Template is the status-effect shape embedded in an Effect
type Template struct {
	Name        string   `json:"name"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	Changes     []Change `json:"changes,omitempty"`
	Duration    Duration `json:"duration"`
}

// Validate checks the template is attachable
func (t *Template) Validate() error {
	if t == nil {
		return dnderr.InvalidArgument("condition template is required")
	}
	if t.Name == "" {
		return dnderr.InvalidArgument("condition name is required")
	}
	if t.Duration.Rounds < 0 || t.Duration.Seconds < 0 || t.Duration.Turns < 0 {
		return dnderr.InvalidArgumentf("condition %q has a negative duration", t.Name)
	}
	for _, change := range t.Changes {
		if change.Key == "" {
			return dnderr.InvalidArgumentf("condition %q has a change without a key", t.Name)
		}
		if change.Mode < ModeCustom || change.Mode > ModeOverride {
			return dnderr.InvalidArgumentf("condition %q has unknown change mode %d", t.Name, change.Mode)
		}
	}
	return nil
}

// Origin identifies what attached a condition
type Origin struct {
	ActorID  string `json:"actorId,omitempty"`
	ActionID string `json:"actionId,omitempty"`
	EffectID string `json:"effectId,omitempty"`
}

// Condition is a template instance attached to an actor
type Condition struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon,omitempty"`
	Description     string    `json:"description,omitempty"`
	Changes         []Change  `json:"changes,omitempty"`
	Duration        Duration  `json:"duration"`
	RemainingRounds int       `json:"remainingRounds"`
	Permanent       bool      `json:"permanent,omitempty"`
	Origin          Origin    `json:"origin"`
	AppliedAt       time.Time `json:"appliedAt"`
}

// Instantiate creates a condition instance from a template
func Instantiate(id string, tmpl *Template, origin Origin, now time.Time) *Condition {
	changes := make([]Change, len(tmpl.Changes))
	copy(changes, tmpl.Changes)

	return &Condition{
		ID:              id,
		Name:            tmpl.Name,
		Icon:            tmpl.Icon,
		Description:     tmpl.Description,
		Changes:         changes,
		Duration:        tmpl.Duration,
		RemainingRounds: tmpl.Duration.TotalRounds(),
		Permanent:       tmpl.Duration.IsZero(),
		Origin:          origin,
		AppliedAt:       now,
	}
}

// IsExpired checks if the condition has run out
func (c *Condition) IsExpired() bool {
	return !c.Permanent && c.RemainingRounds <= 0
}
