package condition

//go:generate mockgen -destination=mock/mock_service.go -package=mockcondition -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/effects"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// Service manages the conditions attached to actor documents
type Service interface {
	// GetConditions returns the actor's active conditions
	GetConditions(ctx context.Context, actorID string) ([]*effects.Condition, error)

	// HasCondition checks for an active condition by name, ignoring case
	HasCondition(ctx context.Context, actorID, name string) (bool, error)

	// RemoveCondition removes one condition instance
	RemoveCondition(ctx context.Context, actorID, conditionID string) error

	// RemoveByAction removes every condition an action attached and returns
	// the removed ids
	RemoveByAction(ctx context.Context, actorID, actionID string) ([]string, error)

	// GetActiveValues returns the actor's formula variables with condition
	// changes applied
	GetActiveValues(ctx context.Context, actorID string) (dice.Variables, error)
}

// ActorRepository is the actor storage the service reads and patches
type ActorRepository interface {
	GetActor(ctx context.Context, id string) (*actor.Actor, error)
	UpdateDocument(ctx context.Context, ref string, patch *actor.Patch) (*actor.Actor, error)
}

type service struct {
	actors   ActorRepository
	registry *rules.Registry
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Actors   ActorRepository // Required
	Registry *rules.Registry // Required for GetActiveValues
}

// NewService creates a new condition service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Actors == nil {
		panic("actor repository is required")
	}
	return &service{actors: cfg.Actors, registry: cfg.Registry}
}

func (s *service) load(ctx context.Context, actorID string) (*actor.Actor, error) {
	if actorID == "" {
		return nil, dnderr.InvalidArgument("actor id is required")
	}
	a, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor")
	}
	return a, nil
}

func (s *service) GetConditions(ctx context.Context, actorID string) ([]*effects.Condition, error) {
	a, err := s.load(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return effects.NewManager(a.Conditions...).Active(), nil
}

func (s *service) HasCondition(ctx context.Context, actorID, name string) (bool, error) {
	active, err := s.GetConditions(ctx, actorID)
	if err != nil {
		return false, err
	}
	for _, c := range active {
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) RemoveCondition(ctx context.Context, actorID, conditionID string) error {
	a, err := s.load(ctx, actorID)
	if err != nil {
		return err
	}

	found := false
	for _, c := range a.Conditions {
		if c.ID == conditionID {
			found = true
			break
		}
	}
	if !found {
		return dnderr.NotFoundf("condition %s not found on actor %s", conditionID, actorID).
			WithCondition(conditionID)
	}

	if _, err := s.actors.UpdateDocument(ctx, a.Ref(), actor.NewPatch().RemoveCondition(conditionID)); err != nil {
		return dnderr.Wrap(err, "failed to remove condition")
	}
	log.Printf("ConditionService: removed %s from %s", conditionID, a.Name)
	return nil
}

func (s *service) RemoveByAction(ctx context.Context, actorID, actionID string) ([]string, error) {
	a, err := s.load(ctx, actorID)
	if err != nil {
		return nil, err
	}

	patch := actor.NewPatch()
	removed := []string{}
	for _, c := range a.Conditions {
		if c.Origin.ActionID == actionID {
			patch.RemoveCondition(c.ID)
			removed = append(removed, c.ID)
		}
	}
	if patch.IsEmpty() {
		return removed, nil
	}

	if _, err := s.actors.UpdateDocument(ctx, a.Ref(), patch); err != nil {
		return nil, dnderr.Wrap(err, "failed to remove conditions")
	}
	log.Printf("ConditionService: removed %d conditions of %s from %s", len(removed), actionID, a.Name)
	return removed, nil
}

func (s *service) GetActiveValues(ctx context.Context, actorID string) (dice.Variables, error) {
	if s.registry == nil {
		return nil, dnderr.Configurationf("no rule registry configured")
	}
	a, err := s.load(ctx, actorID)
	if err != nil {
		return nil, err
	}
	abilities, err := rules.Resolve[rules.AbilityScoreModule](ctx, s.registry, rules.CategoryAbilityScores)
	if err != nil {
		return nil, err
	}
	return a.Variables(abilities), nil
}
