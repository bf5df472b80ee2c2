package references

import (
	"context"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
)

// Documents is the storage the resolver reads from. Missing documents are
// not found errors.
type Documents interface {
	GetActor(ctx context.Context, id string) (*actor.Actor, error)
	GetMacro(ctx context.Context, id string) (*scripting.Macro, error)
	GetTable(ctx context.Context, id string) (*rolltables.Table, error)
}

// Resolver turns references into documents
type Resolver struct {
	docs Documents
}

// NewResolver creates a resolver over docs
func NewResolver(docs Documents) *Resolver {
	if docs == nil {
		panic("documents are required")
	}
	return &Resolver{docs: docs}
}

// ResolveActor loads the actor a reference points at. Item references
// resolve to their owner.
func (r *Resolver) ResolveActor(ctx context.Context, s string) (*actor.Actor, error) {
	ref, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if ref.Kind != KindActor && ref.Kind != KindItem {
		return nil, dnderr.InvalidArgumentf("%s is not an actor reference", s)
	}
	return r.docs.GetActor(ctx, ref.DocumentID())
}

// ResolveItem loads an embedded item and its owner. A missing owner or
// item is nil with no error.
func (r *Resolver) ResolveItem(ctx context.Context, s string) (*actor.Actor, *actor.Item, error) {
	ref, err := Parse(s)
	if err != nil {
		return nil, nil, err
	}
	if ref.Kind != KindItem {
		return nil, nil, dnderr.InvalidArgumentf("%s is not an item reference", s)
	}

	owner, err := r.docs.GetActor(ctx, ref.OwnerID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	item := owner.Item(ref.ID)
	if item == nil {
		return owner, nil, nil
	}
	return owner, item, nil
}

// Macro implements scripting.MacroSource
func (r *Resolver) Macro(ctx context.Context, s string) (*scripting.Macro, error) {
	ref, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if ref.Kind != KindMacro {
		return nil, dnderr.InvalidArgumentf("%s is not a macro reference", s)
	}
	macro, err := r.docs.GetMacro(ctx, ref.ID)
	if dnderr.IsNotFound(err) {
		return nil, nil
	}
	return macro, err
}

// Table implements rolltables.TableSource
func (r *Resolver) Table(ctx context.Context, s string) (*rolltables.Table, error) {
	ref, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if ref.Kind != KindRollTable {
		return nil, dnderr.InvalidArgumentf("%s is not a roll table reference", s)
	}
	table, err := r.docs.GetTable(ctx, ref.ID)
	if dnderr.IsNotFound(err) {
		return nil, nil
	}
	return table, err
}
