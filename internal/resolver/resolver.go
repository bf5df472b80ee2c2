package resolver

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/events"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/saves"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

const tracerName = "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"

// Config holds one resolution's inputs and collaborators. Registry,
// Evaluator and Documents are required.
type Config struct {
	Action  *actions.Action
	Source  *actor.Actor
	Item    *actor.Item
	Targets []*actor.Actor

	Registry   *rules.Registry
	Saves      *saves.Resolver
	Evaluator  *dice.Evaluator
	Documents  DocumentUpdater
	References ReferenceResolver
	Notifier   Notifier
	Macros     MacroRunner
	Scripts    ScriptRunner
	Tables     TableDrawer
	IDs        uuid.Generator
	Bus        *events.Bus
	Tracer     trace.Tracer
	Now        func() time.Time
}

// ActionResolver runs one action through validation, consumption, the
// attempt and its effects. Each resolver resolves once.
type ActionResolver struct {
	mu    sync.Mutex
	state State

	action  *actions.Action
	source  *actor.Actor
	item    *actor.Item
	targets []*actor.Actor

	registry   *rules.Registry
	saves      *saves.Resolver
	evaluator  *dice.Evaluator
	documents  DocumentUpdater
	references ReferenceResolver
	notifier   Notifier
	macros     MacroRunner
	scripts    ScriptRunner
	tables     TableDrawer
	ids        uuid.Generator
	bus        *events.Bus
	tracer     trace.Tracer
	now        func() time.Time

	abilities actor.ModifierTable
	result    *Result
}

// New creates a resolver for a single resolution
func New(cfg *Config) *ActionResolver {
	if cfg == nil {
		panic("resolver config is required")
	}
	if cfg.Registry == nil {
		panic("rule registry is required")
	}
	if cfg.Evaluator == nil {
		panic("dice evaluator is required")
	}
	if cfg.Documents == nil {
		panic("document updater is required")
	}

	r := &ActionResolver{
		state:      StateCreated,
		action:     cfg.Action,
		source:     cfg.Source,
		item:       cfg.Item,
		targets:    append([]*actor.Actor{}, cfg.Targets...),
		registry:   cfg.Registry,
		saves:      cfg.Saves,
		evaluator:  cfg.Evaluator,
		documents:  cfg.Documents,
		references: cfg.References,
		notifier:   cfg.Notifier,
		macros:     cfg.Macros,
		scripts:    cfg.Scripts,
		tables:     cfg.Tables,
		ids:        cfg.IDs,
		bus:        cfg.Bus,
		tracer:     cfg.Tracer,
		now:        cfg.Now,
	}

	if r.saves == nil {
		r.saves = saves.NewResolver(cfg.Evaluator)
		if err := saves.RegisterBuiltins(r.saves); err != nil {
			panic(fmt.Sprintf("failed to register saving throw systems: %v", err))
		}
	}
	if r.ids == nil {
		r.ids = uuid.NewGoogleUUIDGenerator()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	if r.now == nil {
		r.now = time.Now
	}

	r.result = &Result{
		State:          StateCreated,
		PerTarget:      make(map[string]bool),
		Targets:        []*TargetResult{},
		EffectsApplied: []*EffectApplication{},
	}
	if r.action != nil {
		r.result.ActionID = r.action.ID
		r.result.ActionName = r.action.Name
		r.result.Blind = r.action.Flags.IsBlind
	}
	if r.source != nil {
		r.result.SourceID = r.source.ID
	}
	return r
}

// State returns the current state
func (r *ActionResolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Resolve runs the pipeline. Validation and consumption failures abort the
// resolution; per-target failures are recorded on the result. The result is
// returned alongside any error.
func (r *ActionResolver) Resolve(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	if r.state != StateCreated {
		state := r.state
		r.mu.Unlock()
		return nil, dnderr.Internalf("action resolver has already run (state %s)", state)
	}
	r.mu.Unlock()

	ctx, span := r.tracer.Start(ctx, "ActionResolver.Resolve", trace.WithAttributes(
		attribute.String("action.id", r.result.ActionID),
		attribute.String("source.id", r.result.SourceID),
		attribute.Int("targets", len(r.targets)),
	))
	defer span.End()

	steps := []struct {
		state State
		run   func(context.Context) error
	}{
		{StateValidating, r.validate},
		{StateConsuming, r.consume},
		{StateAttempting, r.attempt},
		{StateApplyingEffects, r.applyEffects},
	}
	for _, step := range steps {
		if step.state == StateApplyingEffects && !r.shouldApplyEffects() {
			continue
		}
		if err := r.phase(ctx, step.state, step.run); err != nil {
			return r.fail(ctx, span, err)
		}
	}

	r.transition(StateDone, nil)
	r.result.State = StateDone
	r.result.Flavor = r.flavor()
	span.SetAttributes(attribute.Bool("success", r.result.Success))

	r.emit(&events.CompletionEvent{
		BaseEvent: r.baseEvent(events.EventTypeResolutionComplete, ""),
		State:     string(StateDone),
		Success:   r.result.Success,
	})
	return r.result, nil
}

// phase runs one state inside its own span
func (r *ActionResolver) phase(ctx context.Context, state State, run func(context.Context) error) error {
	r.transition(state, nil)

	ctx, span := r.tracer.Start(ctx, "ActionResolver."+string(state))
	defer span.End()

	if err := run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *ActionResolver) fail(ctx context.Context, span trace.Span, err error) (*Result, error) {
	r.transition(StateErrored, err)
	span.RecordError(err)
	span.SetAttributes(attribute.String("error.code", string(dnderr.GetCode(err))))
	span.SetStatus(codes.Error, err.Error())

	r.result.State = StateErrored
	r.result.Success = false
	r.result.Error = err.Error()

	log.Printf("ActionResolver: resolution of %s failed: %v", r.result.ActionID, err)
	if dnderr.IsValidation(err) && r.notifier != nil {
		r.notifier.NotifyError(ctx, err.Error())
	}

	r.emit(&events.CompletionEvent{
		BaseEvent: r.baseEvent(events.EventTypeResolutionFailed, ""),
		State:     string(StateErrored),
		Err:       err,
	})
	return r.result, err
}

func (r *ActionResolver) transition(to State, err error) {
	r.mu.Lock()
	from := r.state
	r.state = to
	r.mu.Unlock()

	event := events.NewPhaseEvent(r.result.ActionID, r.result.SourceID, string(from), string(to))
	event.Err = err
	r.emit(event)
}

func (r *ActionResolver) shouldApplyEffects() bool {
	return r.action.Flags.UsesEffect && r.result.Success
}

func (r *ActionResolver) flavor() string {
	f := r.action.Attempt.Flavor
	if r.action.Flags.IsBlind && f.Blind != "" {
		return f.Blind
	}
	text := f.Fail
	if r.result.Success {
		text = f.Success
	}
	if text == "" {
		text = f.Attempt
	}
	return text
}

func (r *ActionResolver) baseEvent(eventType events.EventType, targetID string) events.BaseEvent {
	return events.BaseEvent{
		Type:     eventType,
		ActionID: r.result.ActionID,
		SourceID: r.result.SourceID,
		TargetID: targetID,
	}
}

// emit publishes an event. Listener failures never abort a resolution.
func (r *ActionResolver) emit(event events.Event) {
	if err := r.bus.Emit(event); err != nil {
		log.Printf("ActionResolver: event %s: %v", event.GetType(), err)
	}
}

// validate checks that the action can be used right now. Nothing is
// rolled or written.
func (r *ActionResolver) validate(ctx context.Context) error {
	if r.action == nil {
		return dnderr.Validation("action is required")
	}
	if r.source == nil {
		return dnderr.Validationf("%s needs an acting actor", r.action.Name)
	}
	if err := r.action.Validate(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeValidation, "action cannot be used")
	}
	if err := r.checkFormulas(); err != nil {
		return err
	}

	abilities, err := rules.Resolve[rules.AbilityScoreModule](ctx, r.registry, rules.CategoryAbilityScores)
	if err != nil {
		return err
	}
	r.abilities = abilities

	if r.action.Flags.UsesLevelRestrictions && !r.action.Level.Allows(r.source.Level) {
		return dnderr.Validationf("%s cannot use %s at level %d (levels %s)",
			r.source.Name, r.action.Name, r.source.Level, describeGate(r.action.Level)).
			WithAction(r.action.ID)
	}
	if r.action.Uses.Finite() && r.action.Uses.Value <= 0 {
		return dnderr.Validationf("%s has no uses remaining", r.action.Name).
			WithAction(r.action.ID)
	}
	if r.action.Flags.UsesConsumption && actions.NeedsOriginItem(r.action.Consumption) && r.item == nil {
		return dnderr.Validationf("%s consumes the item it belongs to, but no item was given", r.action.Name).
			WithAction(r.action.ID)
	}
	return nil
}

// checkFormulas parses every formula the action can roll, so a malformed
// one fails before anything is charged
func (r *ActionResolver) checkFormulas() error {
	var formulas []string
	if r.action.Flags.UsesAttempt && !r.action.IsLikeAttack() {
		formulas = append(formulas, r.action.Attempt.Roll.Formula)
	}
	for _, effect := range r.action.Effects {
		if f := effect.MagnitudeFormula(); f != "" {
			formulas = append(formulas, f)
		}
		if effect.Resistance == nil {
			continue
		}
		if check, ok := effect.Resistance.Check.(*actions.StaticRoll); ok {
			formulas = append(formulas, check.Formula)
		}
	}

	for _, f := range formulas {
		if err := r.evaluator.Validate(f); err != nil {
			return dnderr.Wrapf(err, "%s cannot be rolled", r.action.Name).WithAction(r.action.ID)
		}
	}
	return nil
}

func describeGate(g *actions.LevelGate) string {
	switch {
	case g.Min > 0 && g.Max > 0:
		return fmt.Sprintf("%d-%d", g.Min, g.Max)
	case g.Min > 0:
		return fmt.Sprintf("%d+", g.Min)
	default:
		return fmt.Sprintf("up to %d", g.Max)
	}
}
