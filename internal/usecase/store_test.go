package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// fakeStore keeps values as marshaled JSON so stored data round-trips
// exactly the way the real backends see it.
type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
	fail error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (s *fakeStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *fakeStore) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = raw
	return nil
}

var errStoreDown = errors.New("store unavailable")
