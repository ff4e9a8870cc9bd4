// Package kvstore provides the KeyValueStore backends. Every backend
// exposes the same two primitives, get and set, and nothing else: no
// INCR, no conditional put, no transactions. Services that need
// append or increment semantics do a plain read-then-write on top,
// which keeps backends interchangeable and keeps the service's
// concurrency behavior identical no matter which one is configured.
package kvstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "RedisStore.Get")
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, errors.Wrap(err, "RedisStore.Get: unmarshal")
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "RedisStore.Set: marshal")
	}
	if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return errors.Wrap(err, "RedisStore.Set")
	}
	return nil
}
