// Package documents stores actors, macros and roll tables as JSON
// documents and applies resolution patches to them
package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/references"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
)

// Repository is typed access to a Store. Updates to the same document are
// serialized within the process.
type Repository struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRepository wraps store
func NewRepository(store Store) *Repository {
	if store == nil {
		panic("document store is required")
	}
	return &Repository{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *Repository) lock(key string) func() {
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (r *Repository) get(ctx context.Context, kind references.Kind, id string, out any) error {
	data, err := r.store.Get(ctx, kind, id)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s %s: %w", kind, id, err)
	}
	return nil
}

func (r *Repository) put(ctx context.Context, kind references.Kind, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %s: %w", kind, id, err)
	}
	return r.store.Put(ctx, kind, id, data)
}

// GetActor loads an actor
func (r *Repository) GetActor(ctx context.Context, id string) (*actor.Actor, error) {
	var a actor.Actor
	if err := r.get(ctx, references.KindActor, id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActors loads several actors concurrently, preserving order
func (r *Repository) GetActors(ctx context.Context, ids []string) ([]*actor.Actor, error) {
	actors := make([]*actor.Actor, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			a, err := r.GetActor(ctx, id)
			if err != nil {
				return dnderr.Wrapf(err, "failed to get actor %s", id)
			}
			actors[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return actors, nil
}

// SaveActor stores an actor
func (r *Repository) SaveActor(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		return dnderr.InvalidArgument("actor id is required")
	}
	return r.put(ctx, references.KindActor, a.ID, a)
}

// DeleteActor removes an actor
func (r *Repository) DeleteActor(ctx context.Context, id string) error {
	return r.store.Delete(ctx, references.KindActor, id)
}

// ListActorIDs lists stored actor ids in order
func (r *Repository) ListActorIDs(ctx context.Context) ([]string, error) {
	return r.store.List(ctx, references.KindActor)
}

// GetMacro loads a macro
func (r *Repository) GetMacro(ctx context.Context, id string) (*scripting.Macro, error) {
	var m scripting.Macro
	if err := r.get(ctx, references.KindMacro, id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMacro validates and stores a macro
func (r *Repository) SaveMacro(ctx context.Context, m *scripting.Macro) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return r.put(ctx, references.KindMacro, m.ID, m)
}

// GetTable loads a roll table
func (r *Repository) GetTable(ctx context.Context, id string) (*rolltables.Table, error) {
	var t rolltables.Table
	if err := r.get(ctx, references.KindRollTable, id, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTable validates the bands and stores a roll table
func (r *Repository) SaveTable(ctx context.Context, t *rolltables.Table) error {
	if err := t.Validate(nil); err != nil {
		return err
	}
	return r.put(ctx, references.KindRollTable, t.ID, t)
}

// UpdateDocument applies patch to the actor ref points at and saves it.
// Item references patch their owner.
func (r *Repository) UpdateDocument(ctx context.Context, ref string, patch *actor.Patch) (*actor.Actor, error) {
	parsed, err := references.Parse(ref)
	if err != nil {
		return nil, err
	}
	if parsed.Kind != references.KindActor && parsed.Kind != references.KindItem {
		return nil, dnderr.InvalidArgumentf("%s cannot be patched", ref)
	}
	id := parsed.DocumentID()

	unlock := r.lock(references.ActorRef(id))
	defer unlock()

	a, err := r.GetActor(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return a, nil
	}
	if err := a.Apply(patch); err != nil {
		return nil, dnderr.Wrapf(err, "failed to patch %s", ref)
	}
	if err := r.SaveActor(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
