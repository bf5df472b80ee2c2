package actions

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
)

// AttackType selects which actor bonus an attack-like attempt adds
type AttackType string

const (
	AttackMelee   AttackType = "melee"
	AttackMissile AttackType = "missile"
	AttackNone    AttackType = "none"
)

// Valid reports a known attack type. Empty is treated as none.
func (t AttackType) Valid() bool {
	switch t {
	case "", AttackMelee, AttackMissile, AttackNone:
		return true
	}
	return false
}

// AttemptFlags tune the attempt roll
type AttemptFlags struct {
	IsLikeAttack bool `json:"isLikeAttack"`
}

// AttackSpec is the attack-like part of an attempt
type AttackSpec struct {
	Type AttackType `json:"type,omitempty"`
}

// RollSpec is the custom roll for an attempt that is not attack-like.
// TargetKey names a variable on the target (such as "ac") used instead of
// the static Target.
type RollSpec struct {
	Formula   string        `json:"formula,omitempty"`
	Operator  dice.Operator `json:"operator,omitempty"`
	Target    *int          `json:"target,omitempty"`
	TargetKey string        `json:"targetKey,omitempty"`
	Modifier  int           `json:"modifier,omitempty"`
}

// Flavor is the text shown per outcome
type Flavor struct {
	Attempt string `json:"attempt,omitempty"`
	Success string `json:"success,omitempty"`
	Fail    string `json:"fail,omitempty"`
	Blind   string `json:"blind,omitempty"`
}

// Attempt is the roll that gates whether effects apply
type Attempt struct {
	Flags  AttemptFlags `json:"flags"`
	Attack AttackSpec   `json:"attack"`
	Roll   RollSpec     `json:"roll"`
	Flavor Flavor       `json:"flavor"`
}
