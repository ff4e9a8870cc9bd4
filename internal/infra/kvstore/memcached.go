package kvstore

import (
	"context"
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
)

// MemcachedStore treats memcached as durable-enough for dev and demo
// deployments. Items are stored without expiration; memcached may
// still evict under memory pressure, which surfaces as an absent key.
type MemcachedStore struct {
	mc *memcache.Client
}

func NewMemcachedStore(mc *memcache.Client) *MemcachedStore {
	return &MemcachedStore{mc: mc}
}

func (s *MemcachedStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	item, err := s.mc.Get(key)
	if err == memcache.ErrCacheMiss {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "MemcachedStore.Get")
	}
	if err := json.Unmarshal(item.Value, dest); err != nil {
		return false, errors.Wrap(err, "MemcachedStore.Get: unmarshal")
	}
	return true, nil
}

func (s *MemcachedStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "MemcachedStore.Set: marshal")
	}
	if err := s.mc.Set(&memcache.Item{Key: key, Value: raw}); err != nil {
		return errors.Wrap(err, "MemcachedStore.Set")
	}
	return nil
}
