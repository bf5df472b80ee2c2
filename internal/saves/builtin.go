package saves

import (
	"context"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Built-in system ids
const (
	SystemClassic               = "classic"
	SystemAbilityRollUnder      = "ability-roll-under"
	SystemAbilityRollUnderTwice = "ability-roll-under-twice"
	SystemLevelAbilityTarget    = "level-ability-target"
)

// ClassicSystem uses the five canonical saves and the class save table
func ClassicSystem() System {
	mappings := make(map[string]Names, len(Canonical))
	for _, c := range Canonical {
		mappings[c] = Names{c}
	}
	return System{
		DisplayName: "Classic",
		Saves:       append([]string{}, Canonical...),
		Mappings:    mappings,
		RollFormula: "1d20",
		Operator:    dice.GreaterOrEqual,
	}
}

var abilityMappings = map[string]Names{
	actor.Strength:     {Paralysis},
	actor.Dexterity:    {Breath},
	actor.Constitution: {Death},
	actor.Intelligence: {Wands},
	actor.Wisdom:       {Spell},
}

// AbilityRollUnderSystem saves by rolling at or under the ability score
func AbilityRollUnderSystem() System {
	return System{
		DisplayName: "Roll Under Ability",
		Saves:       append([]string{}, actor.Abilities...),
		Mappings:    abilityMappings,
		RollFormula: "1d20",
		Operator:    dice.LessOrEqual,
		Resolve:     rollUnder(1),
	}
}

// AbilityRollUnderTwiceSystem needs two independent passing rolls
func AbilityRollUnderTwiceSystem() System {
	return System{
		DisplayName: "Roll Under Ability Twice",
		Saves:       append([]string{}, actor.Abilities...),
		Mappings:    abilityMappings,
		RollFormula: "1d20",
		Operator:    dice.LessOrEqual,
		Resolve:     rollUnder(2),
	}
}

// rollUnder rolls times against the ability score; every roll must pass.
// A positive modifier raises the score rolled against.
func rollUnder(times int) ResolveFunc {
	return func(_ context.Context, req *Request) (*Result, error) {
		score, ok := req.Actor.Abilities[req.Save]
		if !ok {
			return nil, dnderr.Validationf("actor %s has no %s score", req.Actor.ID, req.Save)
		}
		target := score + req.Options.Modifier

		result := &Result{Success: true, Target: target}
		for i := 0; i < times; i++ {
			outcome, err := req.Evaluator.Evaluate(req.System.RollFormula, nil, &dice.Options{
				Operator: req.System.Operator,
				Target:   &target,
				Reroll:   req.Options.Reroll,
			})
			if err != nil {
				return nil, err
			}
			result.Rolls = append(result.Rolls, outcome)
			result.Success = result.Success && outcome.Succeeded()
		}
		return result, nil
	}
}

var levelAbilitySaves = map[string]string{
	"poison":       actor.Constitution,
	"breath":       actor.Dexterity,
	"magic-device": actor.Intelligence,
	"hold":         actor.Strength,
	"spell":        actor.Wisdom,
}

// LevelAbilityTargetSystem saves against 17 - floor(level/2) - ability
// modifier
func LevelAbilityTargetSystem() System {
	return System{
		DisplayName: "Level and Ability Target",
		Saves:       []string{"poison", "breath", "magic-device", "hold", "spell"},
		Mappings: map[string]Names{
			"poison":       {Death},
			"breath":       {Breath},
			"magic-device": {Wands},
			"hold":         {Paralysis},
			"spell":        {Spell},
		},
		RollFormula: "1d20",
		Operator:    dice.GreaterOrEqual,
		Resolve:     levelAbilityTarget,
	}
}

// LevelAbilityTarget returns the save target for level and ability modifier
func LevelAbilityTarget(level, abilityMod int) int {
	return 17 - level/2 - abilityMod
}

func levelAbilityTarget(_ context.Context, req *Request) (*Result, error) {
	ability := levelAbilitySaves[req.Save]
	mod := req.Options.Abilities.Modifier(req.Actor.AbilityScore(ability))
	target := LevelAbilityTarget(req.Actor.Level, mod)

	outcome, err := req.Evaluator.Evaluate(req.System.RollFormula, req.Actor.Variables(req.Options.Abilities), &dice.Options{
		Modifier: req.Options.Modifier,
		Operator: req.System.Operator,
		Target:   &target,
		Reroll:   req.Options.Reroll,
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Success: outcome.Succeeded(),
		Rolls:   []*dice.Outcome{outcome},
		Target:  target,
	}, nil
}

// RegisterBuiltins registers every built-in system
func RegisterBuiltins(r *Resolver) error {
	builtins := []struct {
		id  string
		sys System
	}{
		{SystemClassic, ClassicSystem()},
		{SystemAbilityRollUnder, AbilityRollUnderSystem()},
		{SystemAbilityRollUnderTwice, AbilityRollUnderTwiceSystem()},
		{SystemLevelAbilityTarget, LevelAbilityTargetSystem()},
	}
	for _, b := range builtins {
		if err := r.RegisterSystem(b.id, b.sys); err != nil {
			return err
		}
	}
	return nil
}
