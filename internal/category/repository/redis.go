package repository

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
)

const versionKey = "catalog:categories:version"

// RedisVersionStore keeps the directory version in one Redis counter so every replica
// sees the same value.
type RedisVersionStore struct {
	client *cache.RedisClient
}

func NewRedisVersionStore(client *cache.RedisClient) *RedisVersionStore {
	return &RedisVersionStore{client: client}
}

func (s *RedisVersionStore) Version(ctx context.Context) (int64, error) {
	return s.client.Counter(ctx, versionKey)
}

func (s *RedisVersionStore) Bump(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, versionKey)
}
