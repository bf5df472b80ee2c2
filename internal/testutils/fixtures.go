package testutils

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
)

// CreateTestAttack creates an attack-like melee action dealing formula
func CreateTestAttack(id, formula string) *actions.Action {
	act := &actions.Action{
		ID:      id,
		Name:    "Attack",
		Effects: []*actions.Effect{},
		Attempt: actions.Attempt{
			Flags:  actions.AttemptFlags{IsLikeAttack: true},
			Attack: actions.AttackSpec{Type: actions.AttackMelee},
			Flavor: actions.Flavor{Success: "Hit!", Fail: "Miss."},
		},
	}
	act.Flags.UsesAttempt = true
	act.AddEffect(&actions.Effect{
		ID:    id + ".damage",
		Name:  "Damage",
		Flags: actions.EffectFlags{IsLikeAttack: true},
		Kind:  &actions.Damage{Formula: formula},
	})
	return act
}

// CreateTestHold creates a save-or-be-held action
func CreateTestHold(id string, rounds int) *actions.Action {
	act := &actions.Action{ID: id, Name: "Hold", Effects: []*actions.Effect{}}
	act.AddEffect(&actions.Effect{
		ID:    id + ".held",
		Name:  "Held",
		Flags: actions.EffectFlags{CanBeResisted: true},
		Kind:  &actions.Status{Condition: effects.NewBuilder("Held").ForRounds(rounds).Build()},
		Resistance: &actions.Resistance{
			Check: &actions.SavingThrow{Save: "paralysis"},
		},
	})
	return act
}

// CreateTestCharacter creates a level 3 fighter carrying one attack
func CreateTestCharacter(id, name string) *actor.Actor {
	return &actor.Actor{
		ID:                  id,
		Name:                name,
		Kind:                actor.KindCharacter,
		Level:               3,
		Abilities:           map[string]int{actor.Strength: 16, actor.Dexterity: 12, actor.Constitution: 14},
		HP:                  actor.HitPoints{Value: 20, Max: 20},
		ArmorClass:          4,
		AscendingArmorClass: 15,
		Attack:              actor.AttackBonuses{Melee: 1},
		Damage:              actor.DamageBonuses{Melee: 1},
		Class: &actor.Class{
			Key:  "fighter",
			Name: "Fighter",
			Saves: map[int]map[string]int{
				1: {"death": 12, "wands": 13, "paralysis": 14, "breath": 15, "spell": 16},
			},
		},
		Actions: []*actions.Action{CreateTestAttack(id+".sword", "1d8")},
	}
}

// CreateTestMonster creates a monster with the given hit points and AAC
func CreateTestMonster(id string, hp, aac int) *actor.Actor {
	return &actor.Actor{
		ID:                  id,
		Name:                id,
		Kind:                actor.KindMonster,
		Level:               1,
		HP:                  actor.HitPoints{Value: hp, Max: hp},
		ArmorClass:          19 - aac,
		AscendingArmorClass: aac,
		Class: &actor.Class{
			Key: "monster",
			Saves: map[int]map[string]int{
				1: {"death": 12, "wands": 13, "paralysis": 14, "breath": 15, "spell": 16},
			},
		},
		Actions: []*actions.Action{CreateTestAttack(id+".bite", "1d4")},
	}
}

// CreateTestTable creates a d6 table with three bands
func CreateTestTable(id string) *rolltables.Table {
	return &rolltables.Table{
		ID:      id,
		Name:    "Omens",
		Formula: "1d6",
		Entries: []*rolltables.Entry{
			{Low: 1, High: 2, Text: "A crow circles overhead"},
			{Low: 3, High: 4, Text: "The wind dies"},
			{Low: 5, High: 6, Text: "Distant thunder"},
		},
	}
}

// CreateTestMacro creates a macro that echoes the invocation
func CreateTestMacro(id string) *scripting.Macro {
	return &scripting.Macro{
		ID:      id,
		Name:    "Echo",
		Command: `output(invocation.effectId .. " on " .. invocation.targetId .. " for " .. invocation.magnitude)`,
	}
}
