package actions

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

// EffectType names an effect variant
type EffectType string

const (
	EffectDamage    EffectType = "attack"
	EffectHealing   EffectType = "healing"
	EffectStatus    EffectType = "status-effect"
	EffectMacro     EffectType = "macro"
	EffectScript    EffectType = "script"
	EffectRollTable EffectType = "roll-table"
	EffectNone      EffectType = "none"
)

// EffectKind is the variant payload of an effect
type EffectKind interface {
	Type() EffectType
}

// Damage reduces the target's hit points by the rolled formula
type Damage struct {
	Formula string `json:"formula"`
}

func (*Damage) Type() EffectType { return EffectDamage }

// Healing restores the target's hit points by the rolled formula
type Healing struct {
	Formula string `json:"formula"`
}

func (*Healing) Type() EffectType { return EffectHealing }

// Status attaches an embedded condition template to the target
type Status struct {
	Condition *effects.Template `json:"condition"`
}

func (*Status) Type() EffectType { return EffectStatus }

// Macro runs a stored macro document
type Macro struct {
	Ref string `json:"ref"`
}

func (*Macro) Type() EffectType { return EffectMacro }

// Script runs inline script source
type Script struct {
	Source string `json:"source"`
}

func (*Script) Type() EffectType { return EffectScript }

// RollTable draws from a stored roll table
type RollTable struct {
	Ref string `json:"ref"`
}

func (*RollTable) Type() EffectType { return EffectRollTable }

// NoEffect carries no mechanical consequence
type NoEffect struct{}

func (*NoEffect) Type() EffectType { return EffectNone }

// EffectFlags tune how an effect lands
type EffectFlags struct {
	CanBeResisted bool `json:"canBeResisted"`
	IsMagical     bool `json:"isMagical"`
	IsLikeAttack  bool `json:"isLikeAttack"`
}

// Effect is one consequence of a successful action
type Effect struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Flags       EffectFlags `json:"flags"`
	Resistance  *Resistance `json:"resistance,omitempty"`
	Kind        EffectKind  `json:"-"`
}

// NewEffect creates an effect with a freshly generated id
func NewEffect(gen uuid.Generator, name string, kind EffectKind) *Effect {
	return &Effect{
		ID:   gen.New(),
		Name: name,
		Kind: kind,
	}
}

// Type returns the variant type, none when unset
func (e *Effect) Type() EffectType {
	if e.Kind == nil {
		return EffectNone
	}
	return e.Kind.Type()
}

// MagnitudeFormula returns the damage or healing formula, empty for other kinds
func (e *Effect) MagnitudeFormula() string {
	switch k := e.Kind.(type) {
	case *Damage:
		return k.Formula
	case *Healing:
		return k.Formula
	}
	return ""
}

// ResistanceType names a resistance variant
type ResistanceType string

const (
	ResistSavingThrow  ResistanceType = "saving-throw"
	ResistAbilityCheck ResistanceType = "ability-score"
	ResistStaticRoll   ResistanceType = "static"
)

// ResistanceCheck is the variant payload of a resistance
type ResistanceCheck interface {
	Type() ResistanceType
}

// SavingThrow resists with a save from the target's saving-throw system
type SavingThrow struct {
	Save string `json:"save"`
}

func (*SavingThrow) Type() ResistanceType { return ResistSavingThrow }

// AbilityCheck resists by rolling 1d20 under an ability score
type AbilityCheck struct {
	Ability string `json:"ability"`
}

func (*AbilityCheck) Type() ResistanceType { return ResistAbilityCheck }

// StaticRoll resists with its own formula, operator and target
type StaticRoll struct {
	Formula  string        `json:"formula"`
	Operator dice.Operator `json:"operator"`
	Target   int           `json:"target"`
}

func (*StaticRoll) Type() ResistanceType { return ResistStaticRoll }

// Resistance is how a target avoids an effect. A successful check negates
// the effect entirely.
type Resistance struct {
	Check    ResistanceCheck `json:"-"`
	Modifier int             `json:"modifier,omitempty"`
}
