package settings

import (
	"context"
	"sync"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

type inMemoryRepo struct {
	mu         sync.RWMutex
	selections map[rules.Category]string
}

// NewInMemory creates an in-memory settings repository
func NewInMemory() Repository {
	return &inMemoryRepo{selections: make(map[rules.Category]string)}
}

func (r *inMemoryRepo) SelectedModuleID(_ context.Context, category rules.Category) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selections[category], nil
}

func (r *inMemoryRepo) SetSelected(_ context.Context, category rules.Category, moduleID string) error {
	if moduleID == "" {
		return dnderr.InvalidArgument("module id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections[category] = moduleID
	return nil
}

func (r *inMemoryRepo) ClearSelected(_ context.Context, category rules.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selections, category)
	return nil
}

func (r *inMemoryRepo) Selections(_ context.Context) (map[rules.Category]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[rules.Category]string, len(r.selections))
	for k, v := range r.selections {
		out[k] = v
	}
	return out, nil
}
