package resolver

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockresolver -source=interfaces.go

import (
	"context"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/dice"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
)

// DocumentUpdater is the host's document write primitive. It applies the
// patch to the document behind ref and returns the updated document.
type DocumentUpdater interface {
	UpdateDocument(ctx context.Context, ref string, patch *actor.Patch) (*actor.Actor, error)
}

// ReferenceResolver resolves item references such as "Actor.a.Item.b".
// A reference that does not resolve returns nil values and no error.
type ReferenceResolver interface {
	ResolveItem(ctx context.Context, ref string) (*actor.Actor, *actor.Item, error)
}

// Notifier surfaces validation failures to the user
type Notifier interface {
	NotifyError(ctx context.Context, message string)
}

// Invocation is what a delegated effect receives
type Invocation struct {
	ActionID  string         `json:"actionId"`
	EffectID  string         `json:"effectId"`
	SourceID  string         `json:"sourceId"`
	TargetID  string         `json:"targetId,omitempty"`
	Magnitude int            `json:"magnitude,omitempty"`
	Variables dice.Variables `json:"variables,omitempty"`
}

// MacroRunner executes a stored macro by reference
type MacroRunner interface {
	RunMacro(ctx context.Context, ref string, inv *Invocation) (string, error)
}

// ScriptRunner executes an inline script
type ScriptRunner interface {
	RunScript(ctx context.Context, source string, inv *Invocation) (string, error)
}

// TableDrawer draws from a roll table by reference
type TableDrawer interface {
	DrawTable(ctx context.Context, ref string, inv *Invocation) (string, error)
}
