package rules

import (
	"context"
	"log"
	"sync"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

//go:generate mockgen -destination=mock/mock_selection_store.go -package=mockrules github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules SelectionStore

// SelectionStore returns the persisted selected module id for a category.
// An empty id means nothing is selected.
type SelectionStore interface {
	SelectedModuleID(ctx context.Context, category Category) (string, error)
}

type entries struct {
	order   []string
	modules map[string]Module
}

// Registry is the categorized store of rule modules. It is built once at
// startup and handed to everything that needs it.
type Registry struct {
	mu         sync.RWMutex
	categories map[Category]*entries
	selections SelectionStore
}

// NewRegistry creates an empty registry reading selections from store.
// A nil store means nothing is ever selected.
func NewRegistry(store SelectionStore) *Registry {
	r := &Registry{
		categories: make(map[Category]*entries, len(Categories)),
		selections: store,
	}
	for _, c := range Categories {
		r.categories[c] = &entries{modules: make(map[string]Module)}
	}
	return r
}

// Register adds module under category. A duplicate id replaces the earlier
// module in place.
func (r *Registry) Register(category Category, module Module) error {
	if !category.Valid() {
		return dnderr.Configurationf("unknown rule category %q", category)
	}
	if module == nil || module.ID() == "" {
		return dnderr.Configurationf("rule module for %s must have an id", category)
	}
	if !satisfies(category, module) {
		return dnderr.Configurationf("rule module %q does not implement the %s contract", module.ID(), category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.categories[category]
	if _, exists := e.modules[module.ID()]; exists {
		log.Printf("RuleRegistry: overwriting %s module %q", category, module.ID())
	} else {
		e.order = append(e.order, module.ID())
	}
	e.modules[module.ID()] = module
	return nil
}

// GetAll returns every module of a category in registration order
func (r *Registry) GetAll(category Category) []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.categories[category]
	if !ok {
		return nil
	}
	out := make([]Module, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.modules[id])
	}
	return out
}

// Get returns the module with id in category
func (r *Registry) Get(category Category, id string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.categories[category]
	if !ok {
		return nil, false
	}
	m, ok := e.modules[id]
	return m, ok
}

// GetSelected returns the module whose id is persisted as selected for
// category. It does not fall back to the default module.
func (r *Registry) GetSelected(ctx context.Context, category Category) (Module, bool) {
	if r.selections == nil {
		return nil, false
	}
	id, err := r.selections.SelectedModuleID(ctx, category)
	if err != nil {
		log.Printf("RuleRegistry: failed to read selection for %s: %v", category, err)
		return nil, false
	}
	if id == "" {
		return nil, false
	}
	return r.Get(category, id)
}

// Default returns the first registered module flagged default
func (r *Registry) Default(category Category) (Module, bool) {
	for _, m := range r.GetAll(category) {
		if m.IsDefault() {
			return m, true
		}
	}
	return nil, false
}

// Resolve returns the selected module for category, falling back to the
// default module. The module must implement T.
func Resolve[T Module](ctx context.Context, r *Registry, category Category) (T, error) {
	var zero T

	m, ok := r.GetSelected(ctx, category)
	if !ok {
		m, ok = r.Default(category)
	}
	if !ok {
		return zero, dnderr.Configurationf("no %s rule module is selected or flagged default", category)
	}
	typed, ok := m.(T)
	if !ok {
		return zero, dnderr.Configurationf("rule module %q does not implement the expected %s contract", m.ID(), category)
	}
	return typed, nil
}

// Pack is a rule pack that answers the bootstrap broadcast by registering
// its modules
type Pack interface {
	RegisterModules(r *Registry) error
}

// Bootstrap broadcasts registration to every pack in order
func Bootstrap(r *Registry, packs ...Pack) error {
	for _, p := range packs {
		if err := p.RegisterModules(r); err != nil {
			return dnderr.Wrapf(err, "failed to register rule pack %T", p)
		}
	}
	return nil
}
