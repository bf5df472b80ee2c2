package documents

import (
	"context"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/references"
)

// Store holds raw JSON documents keyed by kind and id. Get returns a not
// found error for missing documents.
type Store interface {
	Get(ctx context.Context, kind references.Kind, id string) ([]byte, error)
	Put(ctx context.Context, kind references.Kind, id string, data []byte) error
	Delete(ctx context.Context, kind references.Kind, id string) error
	List(ctx context.Context, kind references.Kind) ([]string, error)
}
