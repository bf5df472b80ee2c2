package resolver

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/events"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/saves"
)

// applyEffects applies every effect, in order, to every target the attempt
// succeeded against. Without targets, magnitudes are still rolled and
// delegated effects still run.
func (r *ActionResolver) applyEffects(ctx context.Context) error {
	if len(r.targets) == 0 {
		for _, effect := range r.action.Effects {
			r.addApplication(r.applyUntargeted(ctx, effect))
		}
		return nil
	}

	for _, target := range r.targets {
		if !r.result.PerTarget[target.ID] {
			continue
		}
		current := target
		for _, effect := range r.action.Effects {
			app, updated := r.applyToTarget(ctx, current, effect)
			if updated != nil {
				current = updated
			}
			r.addApplication(app)
		}
	}
	return nil
}

func (r *ActionResolver) addApplication(app *EffectApplication) {
	r.result.EffectsApplied = append(r.result.EffectsApplied, app)
	r.emit(&events.AfterEffectEvent{
		BaseEvent:  r.baseEvent(events.EventTypeAfterEffect, app.TargetID),
		EffectID:   app.EffectID,
		EffectType: string(app.EffectType),
		Resisted:   app.Resisted,
		Amount:     app.Amount,
	})
}

func (r *ActionResolver) applyUntargeted(ctx context.Context, effect *actions.Effect) *EffectApplication {
	app := &EffectApplication{EffectID: effect.ID, EffectType: effect.Type()}
	r.emit(&events.BeforeEffectEvent{
		BaseEvent:  r.baseEvent(events.EventTypeBeforeEffect, ""),
		EffectID:   effect.ID,
		EffectType: string(effect.Type()),
	})

	if err := r.rollMagnitude(ctx, effect, "", app); err != nil {
		app.Error = err.Error()
		return app
	}

	switch effect.Kind.(type) {
	case *actions.Macro, *actions.Script, *actions.RollTable:
		r.delegate(ctx, effect, nil, app)
	case *actions.NoEffect, nil:
		app.Applied = true
	}
	return app
}

// applyToTarget applies one effect to one target. Failures are recorded on
// the application and never abort the resolution. The updated target is
// returned when its document changed.
func (r *ActionResolver) applyToTarget(ctx context.Context, target *actor.Actor, effect *actions.Effect) (*EffectApplication, *actor.Actor) {
	app := &EffectApplication{EffectID: effect.ID, EffectType: effect.Type(), TargetID: target.ID}
	r.emit(&events.BeforeEffectEvent{
		BaseEvent:  r.baseEvent(events.EventTypeBeforeEffect, target.ID),
		EffectID:   effect.ID,
		EffectType: string(effect.Type()),
	})

	if err := r.rollMagnitude(ctx, effect, target.ID, app); err != nil {
		log.Printf("ActionResolver: magnitude of %s against %s failed: %v", effect.ID, target.ID, err)
		app.Error = err.Error()
		return app, nil
	}

	if effect.Flags.CanBeResisted && effect.Resistance != nil && effect.Resistance.Check != nil {
		res, err := r.resist(ctx, target, effect.Resistance)
		if err != nil {
			log.Printf("ActionResolver: resistance of %s to %s failed: %v", target.ID, effect.ID, err)
			app.Error = err.Error()
			return app, nil
		}
		app.Resistance = res
		if res.Success {
			app.Resisted = true
			return app, nil
		}
	}

	patch := actor.NewPatch()
	switch kind := effect.Kind.(type) {
	case *actions.Damage:
		patch.AdjustHitPoints(-app.Amount)
	case *actions.Healing:
		patch.AdjustHitPoints(app.Amount)
	case *actions.Status:
		condition := effects.Instantiate(r.ids.New(), kind.Condition, effects.Origin{
			ActorID:  r.source.ID,
			ActionID: r.action.ID,
			EffectID: effect.ID,
		}, r.now())
		app.ConditionID = condition.ID
		patch.AddCondition(condition)
	case *actions.Macro, *actions.Script, *actions.RollTable:
		r.delegate(ctx, effect, target, app)
		return app, nil
	default:
		app.Applied = true
		return app, nil
	}

	updated, err := r.documents.UpdateDocument(ctx, target.Ref(), patch)
	if err != nil {
		log.Printf("ActionResolver: failed to apply %s to %s: %v", effect.ID, target.ID, err)
		app.Error = err.Error()
		return app, nil
	}
	app.Applied = true
	return app, updated
}

// rollMagnitude rolls the damage or healing formula. Attack-like effects
// add the source's damage bonus for the attack type.
func (r *ActionResolver) rollMagnitude(ctx context.Context, effect *actions.Effect, targetID string, app *EffectApplication) error {
	formula := effect.MagnitudeFormula()
	if formula == "" {
		return nil
	}

	vars := r.source.Variables(r.abilities)
	bonus := 0
	if effect.Flags.IsLikeAttack {
		if key := damageBonusKey(r.action.Attempt.Attack.Type); key != "" {
			bonus, _ = vars.Lookup(key)
		}
	}

	outcome, err := r.evaluator.Evaluate(formula, vars, &dice.Options{Modifier: bonus})
	if err != nil {
		return err
	}

	event := &events.MagnitudeRollEvent{
		BaseEvent: r.baseEvent(events.EventTypeOnMagnitudeRoll, targetID),
		EffectID:  effect.ID,
		Outcome:   outcome,
		Bonus:     bonus,
		Total:     outcome.Total,
	}
	r.emit(event)

	app.Magnitude = outcome
	app.Amount = max(event.Total, 0)

	trace.SpanFromContext(ctx).AddEvent("effect.magnitude", trace.WithAttributes(
		attribute.String("effect.id", effect.ID),
		attribute.String("target.id", targetID),
		attribute.Int("amount", app.Amount),
	))
	return nil
}

// resist rolls the target's resistance. Success means the effect is
// negated entirely.
func (r *ActionResolver) resist(ctx context.Context, target *actor.Actor, res *actions.Resistance) (*ResistanceResult, error) {
	switch check := res.Check.(type) {
	case *actions.SavingThrow:
		systemID, save, err := r.saveFor(ctx, target, check.Save)
		if err != nil {
			return nil, err
		}
		result, err := r.saves.RollSave(ctx, target, systemID, save, &saves.RollOptions{
			Modifier:  res.Modifier,
			Abilities: r.abilities,
		})
		if err != nil {
			return nil, err
		}
		r.emit(&events.SavingThrowEvent{
			BaseEvent: r.baseEvent(events.EventTypeAfterSavingThrow, target.ID),
			Save:      result.Save,
			System:    result.System,
			Target:    result.Target,
			Success:   result.Success,
		})
		return &ResistanceResult{
			Type:    check.Type(),
			Save:    result.Save,
			System:  result.System,
			Target:  result.Target,
			Rolls:   result.Rolls,
			Success: result.Success,
		}, nil

	case *actions.AbilityCheck:
		threshold := target.AbilityScore(check.Ability) + res.Modifier
		outcome, err := r.evaluator.Evaluate("1d20", nil, dice.Against(dice.LessOrEqual, threshold))
		if err != nil {
			return nil, err
		}
		return &ResistanceResult{
			Type:    check.Type(),
			Target:  threshold,
			Rolls:   []*dice.Outcome{outcome},
			Success: outcome.Succeeded(),
		}, nil

	case *actions.StaticRoll:
		threshold := check.Target
		outcome, err := r.evaluator.Evaluate(check.Formula, target.Variables(r.abilities), &dice.Options{
			Modifier: res.Modifier,
			Operator: check.Operator,
			Target:   &threshold,
		})
		if err != nil {
			return nil, err
		}
		return &ResistanceResult{
			Type:    check.Type(),
			Target:  threshold,
			Rolls:   []*dice.Outcome{outcome},
			Success: outcome.Succeeded(),
		}, nil
	}
	return nil, dnderr.Configurationf("unsupported resistance %T", res.Check)
}

// saveFor picks the target's saving throw system and translates a
// canonical save into that system's name for it
func (r *ActionResolver) saveFor(ctx context.Context, target *actor.Actor, save string) (string, string, error) {
	systemID := target.SavingThrowSystem
	if systemID == "" {
		systemID = saves.SystemClassic
		if module, err := rules.Resolve[rules.SavingThrowModule](ctx, r.registry, rules.CategorySavingThrows); err == nil {
			systemID = module.SystemID()
		}
	}

	sys, ok := r.saves.System(systemID)
	if !ok {
		return "", "", dnderr.Configurationf("unknown saving throw system %q", systemID)
	}
	if sys.Declares(save) {
		return systemID, save, nil
	}

	names, err := r.saves.GetSystemEquivalents(systemID, save)
	if err != nil {
		return "", "", err
	}
	if len(names) == 0 {
		return "", "", dnderr.Configurationf("saving throw system %q has no equivalent of %q", systemID, save)
	}
	return systemID, names[0], nil
}

// delegate hands a macro, script or roll-table effect to its runner.
// Failures are recorded, never raised.
func (r *ActionResolver) delegate(ctx context.Context, effect *actions.Effect, target *actor.Actor, app *EffectApplication) {
	inv := &Invocation{
		ActionID:  r.action.ID,
		EffectID:  effect.ID,
		SourceID:  r.source.ID,
		Magnitude: app.Amount,
		Variables: r.source.Variables(r.abilities),
	}
	if target != nil {
		inv.TargetID = target.ID
	}

	var (
		output string
		err    error
	)
	switch kind := effect.Kind.(type) {
	case *actions.Macro:
		if r.macros == nil {
			err = dnderr.Delegationf("no macro runner for %s", kind.Ref)
			break
		}
		output, err = r.macros.RunMacro(ctx, kind.Ref, inv)
	case *actions.Script:
		if r.scripts == nil {
			err = dnderr.Delegationf("no script runner for effect %s", effect.ID)
			break
		}
		output, err = r.scripts.RunScript(ctx, kind.Source, inv)
	case *actions.RollTable:
		if r.tables == nil {
			err = dnderr.Delegationf("no roll table drawer for %s", kind.Ref)
			break
		}
		output, err = r.tables.DrawTable(ctx, kind.Ref, inv)
	}

	if err != nil {
		if !dnderr.IsDelegation(err) {
			err = dnderr.WrapWithCode(err, dnderr.CodeDelegation, "effect "+effect.ID+" failed").WithEffect(effect.ID)
		}
		log.Printf("ActionResolver: delegated %s effect %s failed: %v", effect.Type(), effect.ID, err)
		app.Error = err.Error()
		return
	}
	app.Output = output
	app.Applied = true
}
