// Package repositories opens the configured storage backend for documents
// and settings
package repositories

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/config"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/documents"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/settings"
)

// Backends are the opened stores. Close releases whatever connection they
// share.
type Backends struct {
	Documents documents.Store
	Settings  settings.Repository
	Close     func() error
}

// Open connects the backend named by cfg
func Open(ctx context.Context, cfg config.StorageConfig) (*Backends, error) {
	switch cfg.Backend {
	case config.StorageMemory, "":
		log.Println("Using in-memory repositories")
		return &Backends{
			Documents: documents.NewMemory(),
			Settings:  settings.NewInMemory(),
			Close:     func() error { return nil },
		}, nil

	case config.StorageRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Println("Using Redis for persistence")

		return &Backends{
			Documents: documents.NewRedis(client),
			Settings:  settings.NewRedis(client),
			Close:     client.Close,
		}, nil

	case config.StorageSQLite:
		store, err := documents.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		settingsRepo, err := settings.NewSQLite(store.DB())
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		log.Printf("Using SQLite at %s for persistence", cfg.SQLitePath)

		return &Backends{
			Documents: store,
			Settings:  settingsRepo,
			Close:     store.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
