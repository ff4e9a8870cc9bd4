package usecase

import "context"

// KVStore is the persistence contract every usecase runs on: a string
// key to JSON document mapping with exact-key lookup only. There is no
// compare-and-swap and no multi-key transaction, so every
// read-modify-write sequence built on it is a last-writer-wins race
// under concurrency. That is an accepted property of this service, not
// something an implementation should paper over.
type KVStore interface {
	// Get unmarshals the value at key into dest and reports whether
	// the key existed. An absent key is not an error.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
}
