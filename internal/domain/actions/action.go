package actions

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

// Range in feet for short, medium and long bands
type Range struct {
	Short  int `json:"short"`
	Medium int `json:"medium"`
	Long   int `json:"long"`
}

// Flags switch the resolution phases on and off
type Flags struct {
	UsesAttempt           bool `json:"usesAttempt"`
	UsesEffect            bool `json:"usesEffect"`
	UsesLevelRestrictions bool `json:"usesLevelRestrictions"`
	UsesConsumption       bool `json:"usesConsumption"`
	IsBlind               bool `json:"isBlind"`
}

// LevelGate restricts an action to a band of actor levels. Zero bounds are open.
type LevelGate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Allows reports whether level is inside the gate
func (g *LevelGate) Allows(level int) bool {
	if g == nil {
		return true
	}
	if g.Min > 0 && level < g.Min {
		return false
	}
	if g.Max > 0 && level > g.Max {
		return false
	}
	return true
}

// Cadence is when spent uses come back
type Cadence string

const (
	RechargeRound Cadence = "round"
	RechargeRest  Cadence = "rest"
	RechargeDawn  Cadence = "dawn"
	RechargeDusk  Cadence = "dusk"
	RechargeDaily Cadence = "daily"
	RechargeOther Cadence = "other"
)

// Valid reports a known cadence. Empty means manual.
func (c Cadence) Valid() bool {
	switch c {
	case "", RechargeRound, RechargeRest, RechargeDawn, RechargeDusk, RechargeDaily, RechargeOther:
		return true
	}
	return false
}

// Uses is the action's own charge counter
type Uses struct {
	Value       int     `json:"value"`
	Max         int     `json:"max"`
	RechargesOn Cadence `json:"rechargesOn,omitempty"`
}

// Finite reports whether the action is limited by uses
func (u Uses) Finite() bool {
	return u.Max > 0
}

// Action is a data-described unit of capability: an attack, spell or ability
type Action struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon,omitempty"`
	Description string      `json:"description,omitempty"`
	Range       Range       `json:"range"`
	Flags       Flags       `json:"flags"`
	Level       *LevelGate  `json:"level,omitempty"`
	Consumption Consumption `json:"-"`
	Uses        Uses        `json:"uses"`
	Attempt     Attempt     `json:"attempt"`
	Effects     []*Effect   `json:"effects"`
}

// New creates an action with a freshly generated id
func New(gen uuid.Generator, name string) *Action {
	return &Action{
		ID:      gen.New(),
		Name:    name,
		Effects: []*Effect{},
	}
}

// AddEffect appends an effect and turns the effect phase on
func (a *Action) AddEffect(effect *Effect) *Action {
	a.Effects = append(a.Effects, effect)
	a.Flags.UsesEffect = true
	return a
}

// Effect looks up an effect by id
func (a *Action) Effect(id string) *Effect {
	for _, e := range a.Effects {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// IsLikeAttack reports an attack-style attempt
func (a *Action) IsLikeAttack() bool {
	return a.Flags.UsesAttempt && a.Attempt.Flags.IsLikeAttack
}

// Recharge restores spent uses when cadence matches the action's recharge
// cadence. It reports whether anything changed.
func Recharge(action *Action, cadence Cadence) bool {
	if action == nil || !action.Uses.Finite() || cadence == "" {
		return false
	}
	if action.Uses.RechargesOn != cadence || action.Uses.Value >= action.Uses.Max {
		return false
	}
	action.Uses.Value = action.Uses.Max
	return true
}
