package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

const selectionsKey = "settings:rules"

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed settings repository. Selections live in
// one hash keyed by category.
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) SelectedModuleID(ctx context.Context, category rules.Category) (string, error) {
	id, err := r.client.HGet(ctx, selectionsKey, string(category)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get %s selection from Redis: %w", category, err)
	}
	return id, nil
}

func (r *redisRepo) SetSelected(ctx context.Context, category rules.Category, moduleID string) error {
	if moduleID == "" {
		return dnderr.InvalidArgument("module id is required")
	}
	if err := r.client.HSet(ctx, selectionsKey, string(category), moduleID).Err(); err != nil {
		return fmt.Errorf("failed to save %s selection to Redis: %w", category, err)
	}
	return nil
}

func (r *redisRepo) ClearSelected(ctx context.Context, category rules.Category) error {
	if err := r.client.HDel(ctx, selectionsKey, string(category)).Err(); err != nil {
		return fmt.Errorf("failed to clear %s selection in Redis: %w", category, err)
	}
	return nil
}

func (r *redisRepo) Selections(ctx context.Context) (map[rules.Category]string, error) {
	raw, err := r.client.HGetAll(ctx, selectionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list selections from Redis: %w", err)
	}
	out := make(map[rules.Category]string, len(raw))
	for k, v := range raw {
		out[rules.Category(k)] = v
	}
	return out, nil
}
