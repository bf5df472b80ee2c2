package documents

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/references"
)

type redisStore struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed document store. Documents live under
// doc:<kind>:<id> with a set of ids per kind.
func NewRedis(client redis.UniversalClient) Store {
	if client == nil {
		panic("redis client is required")
	}
	return &redisStore{client: client}
}

func docKey(kind references.Kind, id string) string {
	return fmt.Sprintf("doc:%s:%s", kind, id)
}

func indexKey(kind references.Kind) string {
	return fmt.Sprintf("docs:%s", kind)
}

func (r *redisStore) Get(ctx context.Context, kind references.Kind, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, docKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(kind, id)
		}
		return nil, fmt.Errorf("failed to get %s %s from Redis: %w", kind, id, err)
	}
	return data, nil
}

func (r *redisStore) Put(ctx context.Context, kind references.Kind, id string, data []byte) error {
	if id == "" {
		return errors.New("document id is required")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, docKey(kind, id), string(data), 0)
	pipe.SAdd(ctx, indexKey(kind), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save %s %s to Redis: %w", kind, id, err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, kind references.Kind, id string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, docKey(kind, id))
	pipe.SRem(ctx, indexKey(kind), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s %s from Redis: %w", kind, id, err)
	}
	if del.Val() == 0 {
		return notFound(kind, id)
	}
	return nil
}

func (r *redisStore) List(ctx context.Context, kind references.Kind) ([]string, error) {
	ids, err := r.client.SMembers(ctx, indexKey(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents from Redis: %w", kind, err)
	}
	sort.Strings(ids)
	return ids, nil
}
