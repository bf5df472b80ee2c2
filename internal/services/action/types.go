package action

//go:generate mockgen -destination=mock/mock_service.go -package=mockaction github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/action Service,ActorRepository,ResultSink

import (
	"context"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

// Service defines the action service interface
type Service interface {
	// UseAction resolves one of an actor's actions against targets
	UseAction(ctx context.Context, input *UseActionInput) (*resolver.Result, error)

	// AvailableActions lists the actor's actions and whether each can be
	// used right now
	AvailableActions(ctx context.Context, actorID string) ([]*AvailableAction, error)

	// Recharge restores uses of every action recharging on cadence and
	// returns the recharged action ids
	Recharge(ctx context.Context, actorID string, cadence actions.Cadence) ([]string, error)

	// EndRound ticks the actor's timed conditions down one round and
	// recharges per-round actions
	EndRound(ctx context.Context, actorID string) (*RoundResult, error)
}

// ActorRepository is the actor storage the service reads and patches
type ActorRepository interface {
	GetActor(ctx context.Context, id string) (*actor.Actor, error)
	GetActors(ctx context.Context, ids []string) ([]*actor.Actor, error)
	UpdateDocument(ctx context.Context, ref string, patch *actor.Patch) (*actor.Actor, error)
}

// ResultSink posts finished resolutions to a chat channel
type ResultSink interface {
	PostResult(ctx context.Context, channelID string, result *resolver.Result) error
}

// UseActionInput contains data for using an action
type UseActionInput struct {
	ActorID   string
	ActionID  string
	TargetIDs []string
	ChannelID string // Optional, results are posted here when set
}

// AvailableAction is an action and whether it can be used
type AvailableAction struct {
	Action    *actions.Action
	ItemID    string // Set when the action belongs to an item
	Available bool
	Reason    string // Why it cannot be used
}

// RoundResult reports what ending a round changed
type RoundResult struct {
	Expired    []string // condition ids removed
	Recharged  []string // action ids recharged
	Conditions int      // conditions still active
}
