package resolver

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/events"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// Natural d20 faces that override the comparison on attack-like rolls
const (
	NaturalHit  = 20
	NaturalMiss = 1
)

// attackBonusKey is the actor variable added to an attack-like roll
func attackBonusKey(t actions.AttackType) string {
	switch t {
	case actions.AttackMelee:
		return "mod.meleeAttack"
	case actions.AttackMissile:
		return "mod.missileAttack"
	default:
		return "mod.baseAttack"
	}
}

// damageBonusKey is the actor variable added to an attack-like effect's
// magnitude. Attacks without a type get no damage bonus.
func damageBonusKey(t actions.AttackType) string {
	switch t {
	case actions.AttackMelee:
		return "mod.meleeDamage"
	case actions.AttackMissile:
		return "mod.missileDamage"
	default:
		return ""
	}
}

// attempt decides success overall and per target
func (r *ActionResolver) attempt(ctx context.Context) error {
	if !r.action.Flags.UsesAttempt {
		r.result.Success = true
		for _, target := range r.targets {
			r.recordTarget(&TargetResult{TargetID: target.ID, Success: true})
		}
		return nil
	}

	vars := r.source.Variables(r.abilities)
	if r.action.IsLikeAttack() {
		return r.attackAttempt(ctx, vars)
	}
	return r.checkAttempt(ctx, vars)
}

// attackAttempt rolls 1d20 plus the attack bonus against each target's
// defense from the selected combat module
func (r *ActionResolver) attackAttempt(ctx context.Context, vars dice.Variables) error {
	formula := "1d20 + @" + attackBonusKey(r.action.Attempt.Attack.Type)

	// No defense to compare against; the roll is for the table only
	if len(r.targets) == 0 {
		outcome, err := r.roll(ctx, "", formula, vars, "", nil)
		if err != nil {
			return err
		}
		r.result.Attempt = outcome
		r.result.Success = true
		return nil
	}

	combat, err := rules.Resolve[rules.CombatModule](ctx, r.registry, rules.CategoryCombat)
	if err != nil {
		return err
	}

	for _, target := range r.targets {
		tr := &TargetResult{TargetID: target.ID}
		tr.TargetNumber = combat.TargetNumber(r.source, combat.DefenseOf(target))

		outcome, err := r.roll(ctx, target.ID, formula, vars, dice.GreaterOrEqual, &tr.TargetNumber)
		if err != nil {
			if !r.isolates(err) {
				return err
			}
			log.Printf("ActionResolver: attack roll against %s failed: %v", target.ID, err)
			tr.Error = err.Error()
			r.recordTarget(tr)
			continue
		}

		tr.Roll = outcome
		tr.Success = outcome.Succeeded()
		if natural, ok := outcome.Natural(); ok {
			tr.Natural = natural
			switch natural {
			case NaturalHit:
				tr.Success = true
			case NaturalMiss:
				tr.Success = false
			}
		}
		r.recordTarget(tr)
	}
	return nil
}

// checkAttempt rolls the action's own formula against a static target or a
// value read from each target
func (r *ActionResolver) checkAttempt(ctx context.Context, vars dice.Variables) error {
	rs := r.action.Attempt.Roll

	if len(r.targets) == 0 {
		outcome, err := r.roll(ctx, "", rs.Formula, vars, rs.Operator, rs.Target)
		if err != nil {
			return err
		}
		r.result.Attempt = outcome
		// A target key with nobody to read it from cannot fail
		r.result.Success = rs.Target == nil || outcome.Succeeded()
		return nil
	}

	for _, target := range r.targets {
		tr := &TargetResult{TargetID: target.ID}

		threshold := rs.Target
		if rs.TargetKey != "" {
			value, _ := target.Variables(r.abilities).Lookup(rs.TargetKey)
			threshold = &value
		}
		if threshold != nil {
			tr.TargetNumber = *threshold
		}

		outcome, err := r.roll(ctx, target.ID, rs.Formula, vars, rs.Operator, threshold)
		if err != nil {
			if !r.isolates(err) {
				return err
			}
			log.Printf("ActionResolver: attempt roll against %s failed: %v", target.ID, err)
			tr.Error = err.Error()
			r.recordTarget(tr)
			continue
		}
		tr.Roll = outcome
		tr.Success = outcome.Succeeded()
		r.recordTarget(tr)
	}
	return nil
}

// roll makes one attempt roll. Listeners may adjust the modifier first.
func (r *ActionResolver) roll(ctx context.Context, targetID, formula string, vars dice.Variables, op dice.Operator, target *int) (*dice.Outcome, error) {
	before := &events.BeforeAttemptRollEvent{
		BaseEvent: r.baseEvent(events.EventTypeBeforeAttemptRoll, targetID),
		Formula:   formula,
		Modifier:  r.action.Attempt.Roll.Modifier,
	}
	r.emit(before)

	opts := &dice.Options{Modifier: before.Modifier}
	if target != nil {
		opts.Operator = op
		opts.Target = target
	}

	outcome, err := r.evaluator.Evaluate(formula, vars, opts)
	if err != nil {
		return nil, err
	}

	trace.SpanFromContext(ctx).AddEvent("attempt.roll", trace.WithAttributes(
		attribute.String("target.id", targetID),
		attribute.String("formula", outcome.Formula),
		attribute.Int("total", outcome.Total),
	))
	return outcome, nil
}

// isolates reports whether a failed roll against one target is recorded on
// that target instead of failing the resolution. Only dice failures are
// isolated, and only when other targets remain.
func (r *ActionResolver) isolates(err error) bool {
	return len(r.targets) > 1 && dnderr.IsEvaluation(err)
}

func (r *ActionResolver) recordTarget(tr *TargetResult) {
	r.result.Targets = append(r.result.Targets, tr)
	r.result.PerTarget[tr.TargetID] = tr.Success
	if tr.Success {
		r.result.Success = true
	}
	if r.result.Attempt == nil && tr.Roll != nil {
		r.result.Attempt = tr.Roll
	}

	r.emit(&events.AfterAttemptRollEvent{
		BaseEvent: r.baseEvent(events.EventTypeAfterAttemptRoll, tr.TargetID),
		Outcome:   tr.Roll,
		Success:   tr.Success,
	})
}
