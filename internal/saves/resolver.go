package saves

import (
	"context"
	"log"
	"sync"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules/classic"
)

// Resolver is the registry of saving-throw systems. It keeps no state
// between rolls.
type Resolver struct {
	mu      sync.RWMutex
	systems map[string]*System
	order   []string
	eval    *dice.Evaluator
}

// NewResolver creates an empty resolver rolling through eval
func NewResolver(eval *dice.Evaluator) *Resolver {
	if eval == nil {
		panic("dice evaluator is required")
	}
	return &Resolver{
		systems: make(map[string]*System),
		eval:    eval,
	}
}

// RegisterSystem validates and stores a system. Mapping keys must be
// declared saves and mapped values must be canonical. A duplicate id
// replaces the earlier system.
func (r *Resolver) RegisterSystem(id string, sys System) error {
	if id == "" {
		return dnderr.Configurationf("saving throw system id is required")
	}
	if len(sys.Saves) == 0 {
		return dnderr.Configurationf("saving throw system %q declares no saves", id)
	}
	if sys.RollFormula == "" {
		sys.RollFormula = "1d20"
	}
	if sys.Operator == "" {
		sys.Operator = dice.GreaterOrEqual
	}
	if !sys.Operator.Valid() {
		return dnderr.Configurationf("saving throw system %q has unknown operator %q", id, sys.Operator)
	}

	mappings := make(map[string]Names, len(sys.Mappings))
	for name, canon := range sys.Mappings {
		if !sys.Declares(name) {
			return dnderr.Configurationf("saving throw system %q maps undeclared save %q", id, name)
		}
		for _, c := range canon {
			if !IsCanonical(c) {
				return dnderr.Configurationf("saving throw system %q maps %q to non-canonical save %q", id, name, c)
			}
		}
		mappings[name] = append(Names{}, canon...)
	}
	sys.Mappings = mappings
	sys.Saves = append([]string{}, sys.Saves...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.systems[id]; exists {
		log.Printf("SaveResolver: overwriting saving throw system %q", id)
	} else {
		r.order = append(r.order, id)
	}
	r.systems[id] = &sys
	return nil
}

// System returns a registered system
func (r *Resolver) System(id string) (*System, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sys, ok := r.systems[id]
	return sys, ok
}

// Systems lists registered system ids in registration order
func (r *Resolver) Systems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.order...)
}

func (r *Resolver) lookup(id string) (*System, error) {
	sys, ok := r.System(id)
	if !ok {
		return nil, dnderr.Configurationf("unknown saving throw system %q", id)
	}
	return sys, nil
}

// GetCanonicalEquivalents returns the canonical saves a system save maps to
func (r *Resolver) GetCanonicalEquivalents(systemID, save string) ([]string, error) {
	sys, err := r.lookup(systemID)
	if err != nil {
		return nil, err
	}
	return append([]string{}, sys.Mappings[save]...), nil
}

// GetSystemEquivalents returns the system saves mapped to a canonical
// save, in declaration order
func (r *Resolver) GetSystemEquivalents(systemID, canonical string) ([]string, error) {
	sys, err := r.lookup(systemID)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, name := range sys.Saves {
		for _, c := range sys.Mappings[name] {
			if c == canonical {
				out = append(out, name)
				break
			}
		}
	}
	return out, nil
}

// RollSave rolls save for a under systemID. An unknown system or an
// undeclared save is a configuration error.
func (r *Resolver) RollSave(ctx context.Context, a *actor.Actor, systemID, save string, opts *RollOptions) (*Result, error) {
	sys, err := r.lookup(systemID)
	if err != nil {
		return nil, err
	}
	if !sys.Declares(save) {
		return nil, dnderr.Configurationf("saving throw system %q does not declare save %q", systemID, save)
	}
	if a == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}

	req := &Request{
		Actor:     a,
		SystemID:  systemID,
		System:    sys,
		Save:      save,
		Evaluator: r.eval,
	}
	if opts != nil {
		req.Options = *opts
	}
	if req.Options.Abilities == nil {
		req.Options.Abilities = classic.NewClassicAbilityScores()
	}

	resolve := sys.Resolve
	if resolve == nil {
		resolve = ClassicResolve
	}
	result, err := resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	result.Save = save
	result.System = systemID
	return result, nil
}

// ClassicResolve reads the save target from the actor's class table at
// its level and rolls the system formula against it
func ClassicResolve(_ context.Context, req *Request) (*Result, error) {
	target, ok := req.Actor.Class.SaveTarget(req.Actor.Level, req.Save)
	if !ok {
		return nil, dnderr.Validationf("actor %s has no %s save target at level %d", req.Actor.ID, req.Save, req.Actor.Level)
	}

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
