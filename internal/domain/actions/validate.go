package actions

import (
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Validate checks the action's shape. It does not check whether the action
// can be used right now; that is the resolver's job.
func (a *Action) Validate() error {
	if a == nil {
		return dnderr.InvalidArgument("action is required")
	}
	if a.ID == "" {
		return dnderr.InvalidArgument("action id is required")
	}

	fail := func(format string, args ...any) error {
		return dnderr.InvalidArgumentf(format, args...).WithAction(a.ID)
	}

	if a.Range.Short < 0 || a.Range.Medium < 0 || a.Range.Long < 0 {
		return fail("action %q has a negative range", a.Name)
	}

	if a.Level != nil {
		if a.Level.Min < 0 || a.Level.Max < 0 {
			return fail("action %q has a negative level bound", a.Name)
		}
		if a.Level.Min > 0 && a.Level.Max > 0 && a.Level.Min > a.Level.Max {
			return fail("action %q level min %d is above max %d", a.Name, a.Level.Min, a.Level.Max)
		}
	}

	if a.Uses.Value < 0 || a.Uses.Max < 0 {
		return fail("action %q has negative uses", a.Name)
	}
	if a.Uses.Finite() && a.Uses.Value > a.Uses.Max {
		return fail("action %q has %d uses but a maximum of %d", a.Name, a.Uses.Value, a.Uses.Max)
	}
	if !a.Uses.RechargesOn.Valid() {
		return fail("action %q has unknown recharge cadence %q", a.Name, a.Uses.RechargesOn)
	}

	if a.Flags.UsesConsumption {
		if err := validateConsumption(a.Consumption); err != nil {
			return fail("action %q: %v", a.Name, err)
		}
	}

	if a.Flags.UsesAttempt {
		if err := validateAttempt(&a.Attempt); err != nil {
			return fail("action %q: %v", a.Name, err)
		}
	}

	seen := make(map[string]bool, len(a.Effects))
	for i, e := range a.Effects {
		if e == nil {
			return fail("action %q effect %d is empty", a.Name, i)
		}
		if e.ID == "" {
			return fail("action %q effect %d has no id", a.Name, i)
		}
		if seen[e.ID] {
			return fail("action %q has duplicate effect id %s", a.Name, e.ID)
		}
		seen[e.ID] = true
		if err := e.Validate(); err != nil {
			return fail("action %q: %v", a.Name, err)
		}
	}
	return nil
}

func validateConsumption(c Consumption) error {
	if c == nil {
		return dnderr.InvalidArgument("consumption is enabled but not declared")
	}
	switch v := c.(type) {
	case *SelfQuantity, *SelfUses, *HitPoints, *ActionUses:
	case *ItemQuantity:
		if v.ItemRef == "" {
			return dnderr.InvalidArgument("item-quantity consumption needs an item reference")
		}
	case *ItemUses:
		if v.ItemRef == "" {
			return dnderr.InvalidArgument("item-uses consumption needs an item reference")
		}
	case *SpellSlot:
		if v.Level < 1 || v.Level > 9 {
			return dnderr.InvalidArgumentf("spell slot level %d is out of range", v.Level)
		}
	default:
		return dnderr.InvalidArgumentf("unsupported consumption %T", c)
	}
	return nil
}

func validateAttempt(a *Attempt) error {
	if !a.Attack.Type.Valid() {
		return dnderr.InvalidArgumentf("unknown attack type %q", a.Attack.Type)
	}
	if a.Flags.IsLikeAttack {
		return nil
	}
	if a.Roll.Formula == "" {
		return dnderr.InvalidArgument("attempt roll needs a formula")
	}
	if !a.Roll.Operator.Valid() {
		return dnderr.InvalidArgumentf("attempt roll has unknown operator %q", a.Roll.Operator)
	}
	if a.Roll.Target == nil && a.Roll.TargetKey == "" {
		return dnderr.InvalidArgument("attempt roll needs a target or a target key")
	}
	return nil
}

// Validate checks the effect's shape
func (e *Effect) Validate() error {
	switch k := e.Kind.(type) {
	case nil, *NoEffect:
	case *Damage:
		if k.Formula == "" {
			return dnderr.InvalidArgumentf("damage effect %q needs a formula", e.Name)
		}
	case *Healing:
		if k.Formula == "" {
			return dnderr.InvalidArgumentf("healing effect %q needs a formula", e.Name)
		}
	case *Status:
		if err := k.Condition.Validate(); err != nil {
			return dnderr.Wrapf(err, "status effect %q", e.Name)
		}
	case *Macro:
		if k.Ref == "" {
			return dnderr.InvalidArgumentf("macro effect %q needs a macro reference", e.Name)
		}
	case *Script:
		if k.Source == "" {
			return dnderr.InvalidArgumentf("script effect %q needs source", e.Name)
		}
	case *RollTable:
		if k.Ref == "" {
			return dnderr.InvalidArgumentf("roll table effect %q needs a table reference", e.Name)
		}
	default:
		return dnderr.InvalidArgumentf("effect %q has unsupported kind %T", e.Name, e.Kind)
	}

	if !e.Flags.CanBeResisted {
		return nil
	}
	if e.Resistance == nil || e.Resistance.Check == nil {
		return dnderr.InvalidArgumentf("effect %q can be resisted but declares no resistance", e.Name)
	}
	switch r := e.Resistance.Check.(type) {
	case *SavingThrow:
		if r.Save == "" {
			return dnderr.InvalidArgumentf("effect %q saving throw needs a save", e.Name)
		}
	case *AbilityCheck:
		if r.Ability == "" {
			return dnderr.InvalidArgumentf("effect %q ability check needs an ability", e.Name)
		}
	case *StaticRoll:
		if r.Formula == "" || !r.Operator.Valid() {
			return dnderr.InvalidArgumentf("effect %q static resistance needs a formula and operator", e.Name)
		}
	default:
		return dnderr.InvalidArgumentf("effect %q has unsupported resistance %T", e.Name, r)
	}
	return nil
}
