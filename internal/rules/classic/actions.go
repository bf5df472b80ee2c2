package classic

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// Built-in action ids
const (
	ActionMeleeAttack   = "classic.melee-attack"
	ActionMissileAttack = "classic.missile-attack"
	ActionOpenDoor      = "classic.open-door"
	ActionSearch        = "classic.search"
)

// CharacterActions supplies the actions every character can take
type CharacterActions struct {
	rules.Info
}

// NewCharacterActions creates the default character actions module
func NewCharacterActions() *CharacterActions {
	return &CharacterActions{Info: rules.Info{Key: "classic", Label: "Classic Character Actions", Default: true}}
}

// Actions builds fresh copies of the built-in actions
func (*CharacterActions) Actions() []*actions.Action {
	return []*actions.Action{
		attack(ActionMeleeAttack, "Melee Attack", actions.AttackMelee),
		attack(ActionMissileAttack, "Missile Attack", actions.AttackMissile),
		check(ActionOpenDoor, "Open Door", "1d6 - @abilities.str.mod", 2,
			"Force a stuck door open. Succeeds on 1-2, adjusted by strength."),
		check(ActionSearch, "Search", "1d6", 1,
			"Search a 10' square for secret doors and traps. Takes a turn."),
	}
}

// attack rolls 1d6 damage; the attack-like flag adds the matching damage
// bonus when resolved
func attack(id, name string, typ actions.AttackType) *actions.Action {
	return &actions.Action{
		ID:   id,
		Name: name,
		Flags: actions.Flags{
			UsesAttempt: true,
			UsesEffect:  true,
		},
		Attempt: actions.Attempt{
			Flags:  actions.AttemptFlags{IsLikeAttack: true},
			Attack: actions.AttackSpec{Type: typ},
			Flavor: actions.Flavor{Success: "Hit!", Fail: "Miss."},
		},
		Effects: []*actions.Effect{
			{
				ID:    id + ".damage",
				Name:  "Damage",
				Flags: actions.EffectFlags{IsLikeAttack: true},
				Kind:  &actions.Damage{Formula: "1d6"},
			},
		},
	}
}

func check(id, name, formula string, target int, description string) *actions.Action {
	return &actions.Action{
		ID:          id,
		Name:        name,
		Description: description,
		Flags:       actions.Flags{UsesAttempt: true},
		Attempt: actions.Attempt{
			Roll: actions.RollSpec{
				Formula:  formula,
				Operator: dice.LessOrEqual,
				Target:   &target,
			},
		},
		Effects: []*actions.Effect{},
	}
}
