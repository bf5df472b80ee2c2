package documents

import (
	"context"
	"sort"
	"sync"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/references"
)

type memoryStore struct {
	mu   sync.RWMutex
	docs map[references.Kind]map[string][]byte
}

// NewMemory creates an in-memory document store
func NewMemory() Store {
	return &memoryStore{
		docs: make(map[references.Kind]map[string][]byte),
	}
}

func (m *memoryStore) Get(_ context.Context, kind references.Kind, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[kind][id]
	if !ok {
		return nil, notFound(kind, id)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *memoryStore) Put(_ context.Context, kind references.Kind, id string, data []byte) error {
	if id == "" {
		return dnderr.InvalidArgument("document id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.docs[kind] == nil {
		m.docs[kind] = make(map[string][]byte)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.docs[kind][id] = stored
	return nil
}

func (m *memoryStore) Delete(_ context.Context, kind references.Kind, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[kind][id]; !ok {
		return notFound(kind, id)
	}
	delete(m.docs[kind], id)
	return nil
}

func (m *memoryStore) List(_ context.Context, kind references.Kind) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.docs[kind]))
	for id := range m.docs[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func notFound(kind references.Kind, id string) error {
	return dnderr.NotFoundf("%s %s not found", kind, id).
		WithMeta("kind", string(kind)).
		WithMeta("id", id)
}
