package kvstore

import (
	"context"
	"encoding/json"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// MemoryStore is the in-process backend used for dev mode and tests.
// Values are kept as marshaled JSON so callers see the same
// round-trip behavior as with the networked backends.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, found := s.c.Get(key)
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw.([]byte), dest); err != nil {
		return false, errors.Wrap(err, "MemoryStore.Get: unmarshal")
	}
	return true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "MemoryStore.Set: marshal")
	}
	s.c.Set(key, raw, cache.NoExpiration)
	return nil
}
