// Package action resolves actors' actions end to end: loading documents,
// running the resolver and posting the result
package action

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/events"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/saves"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

type service struct {
	actors     ActorRepository
	registry   *rules.Registry
	saves      *saves.Resolver
	evaluator  *dice.Evaluator
	references resolver.ReferenceResolver
	notifier   resolver.Notifier
	macros     resolver.MacroRunner
	scripts    resolver.ScriptRunner
	tables     resolver.TableDrawer
	sink       ResultSink
	bus        *events.Bus
	ids        uuid.Generator
	tracer     trace.Tracer
}

// ServiceConfig holds configuration for the action service
type ServiceConfig struct {
	Actors     ActorRepository
	Registry   *rules.Registry
	Saves      *saves.Resolver
	Evaluator  *dice.Evaluator
	References resolver.ReferenceResolver
	Notifier   resolver.Notifier
	Macros     resolver.MacroRunner
	Scripts    resolver.ScriptRunner
	Tables     resolver.TableDrawer
	Sink       ResultSink
	Bus        *events.Bus
	IDs        uuid.Generator
	Tracer     trace.Tracer
}

// NewService creates a new action service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Actors == nil {
		panic("actor repository is required")
	}
	if cfg.Registry == nil {
		panic("rule registry is required")
	}

	svc := &service{
		actors:     cfg.Actors,
		registry:   cfg.Registry,
		saves:      cfg.Saves,
		evaluator:  cfg.Evaluator,
		references: cfg.References,
		notifier:   cfg.Notifier,
		macros:     cfg.Macros,
		scripts:    cfg.Scripts,
		tables:     cfg.Tables,
		sink:       cfg.Sink,
		bus:        cfg.Bus,
		ids:        cfg.IDs,
		tracer:     cfg.Tracer,
	}

	if svc.evaluator == nil {
		svc.evaluator = dice.NewEvaluator(dice.NewRandomRoller())
	}
	if svc.saves == nil {
		svc.saves = saves.NewResolver(svc.evaluator)
		if err := saves.RegisterBuiltins(svc.saves); err != nil {
			panic("failed to register saving throw systems: " + err.Error())
		}
	}

	return svc
}

// UseAction loads the source and targets concurrently, resolves and posts
// the result. The result is returned even when resolution fails.
func (s *service) UseAction(ctx context.Context, input *UseActionInput) (*resolver.Result, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.ActorID == "" || input.ActionID == "" {
		return nil, dnderr.InvalidArgument("actor id and action id are required")
	}

	var (
		source  *actor.Actor
		targets []*actor.Actor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.actors.GetActor(gctx, input.ActorID)
		if err != nil {
			return dnderr.Wrap(err, "failed to get acting actor").WithActor(input.ActorID)
		}
		source = a
		return nil
	})
	if len(input.TargetIDs) > 0 {
		g.Go(func() error {
			loaded, err := s.actors.GetActors(gctx, input.TargetIDs)
			if err != nil {
				return dnderr.Wrap(err, "failed to get targets")
			}
			targets = loaded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	act, item := source.FindAction(input.ActionID)
	if act == nil {
		return nil, dnderr.NotFoundf("action %s not found on %s", input.ActionID, source.Name).
			WithActor(source.ID)
	}

	res := resolver.New(&resolver.Config{
		Action:     act,
		Source:     source,
		Item:       item,
		Targets:    targets,
		Registry:   s.registry,
		Saves:      s.saves,
		Evaluator:  s.evaluator,
		Documents:  s.actors,
		References: s.references,
		Notifier:   s.notifier,
		Macros:     s.macros,
		Scripts:    s.scripts,
		Tables:     s.tables,
		IDs:        s.ids,
		Bus:        s.bus,
		Tracer:     s.tracer,
	})
	result, err := res.Resolve(ctx)

	if s.sink != nil && input.ChannelID != "" && result != nil {
		if postErr := s.sink.PostResult(ctx, input.ChannelID, result); postErr != nil {
			log.Printf("Failed to post result of %s to %s: %v", act.Name, input.ChannelID, postErr)
		}
	}
	return result, err
}

// AvailableActions checks level gates and remaining uses without rolling
func (s *service) AvailableActions(ctx context.Context, actorID string) ([]*AvailableAction, error) {
	a, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor")
	}

	available := []*AvailableAction{}
	check := func(act *actions.Action, item *actor.Item) {
		aa := &AvailableAction{Action: act, Available: true}
		if item != nil {
			aa.ItemID = item.ID
		}
		switch {
		case act.Flags.UsesLevelRestrictions && !act.Level.Allows(a.Level):
			aa.Available, aa.Reason = false, "Level too low or too high"
		case act.Uses.Finite() && act.Uses.Value <= 0:
			aa.Available, aa.Reason = false, "No uses remaining"
		case item != nil && item.Uses != nil && item.Uses.Value <= 0 && consumesOwnUses(act):
			aa.Available, aa.Reason = false, "Item has no uses remaining"
		case item != nil && item.Quantity <= 0 && consumesOwnQuantity(act):
			aa.Available, aa.Reason = false, "None left"
		}
		available = append(available, aa)
	}

	for _, act := range a.Actions {
		check(act, nil)
	}
	for _, item := range a.Items {
		for _, act := range item.Actions {
			check(act, item)
		}
	}
	return available, nil
}

func consumesOwnUses(act *actions.Action) bool {
	_, ok := act.Consumption.(*actions.SelfUses)
	return act.Flags.UsesConsumption && ok
}

func consumesOwnQuantity(act *actions.Action) bool {
	_, ok := act.Consumption.(*actions.SelfQuantity)
	return act.Flags.UsesConsumption && ok
}

// Recharge writes every recharged action's uses back in one patch
func (s *service) Recharge(ctx context.Context, actorID string, cadence actions.Cadence) ([]string, error) {
	a, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor")
	}

	patch := actor.NewPatch()
	recharged := rechargeActions(a, cadence, patch)
	if patch.IsEmpty() {
		return recharged, nil
	}
	if _, err := s.actors.UpdateDocument(ctx, a.Ref(), patch); err != nil {
		return nil, dnderr.Wrap(err, "failed to save recharged uses")
	}
	log.Printf("Recharged %d actions of %s on %s", len(recharged), a.Name, cadence)
	return recharged, nil
}

func rechargeActions(a *actor.Actor, cadence actions.Cadence, patch *actor.Patch) []string {
	recharged := []string{}
	charge := func(act *actions.Action) {
		if actions.Recharge(act, cadence) {
			patch.SetActionUses(act.ID, act.Uses.Value)
			recharged = append(recharged, act.ID)
		}
	}
	for _, act := range a.Actions {
		charge(act)
	}
	for _, item := range a.Items {
		for _, act := range item.Actions {
			charge(act)
		}
	}
	return recharged
}

// EndRound ticks conditions and recharges per-round actions in one update
func (s *service) EndRound(ctx context.Context, actorID string) (*RoundResult, error) {
	a, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor")
	}

	patch := actor.NewPatch()
	result := &RoundResult{Expired: []string{}}

	manager := effects.NewManager(a.Conditions...)
	for _, c := range manager.ProcessRoundEnd() {
		result.Expired = append(result.Expired, c.ID)
		patch.SetConditionRounds(c.ID, 0)
	}
	for _, c := range manager.Active() {
		if !c.Permanent {
			patch.SetConditionRounds(c.ID, c.RemainingRounds)
		}
	}
	result.Conditions = len(manager.Active())
	result.Recharged = rechargeActions(a, actions.RechargeRound, patch)

	if patch.IsEmpty() {
		return result, nil
	}
	if _, err := s.actors.UpdateDocument(ctx, a.Ref(), patch); err != nil {
		return nil, dnderr.Wrap(err, "failed to save round end")
	}
	return result, nil
}
