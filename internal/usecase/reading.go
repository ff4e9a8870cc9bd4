package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sanctum-app/sanctum/internal/domain"
)

type ReadingUsecase struct {
	store KVStore
}

func NewReadingUsecase(store KVStore) *ReadingUsecase {
	return &ReadingUsecase{store: store}
}

// Increment adds one to the user's counter for the current UTC day and
// returns the new value. The counter is advisory: it is never compared
// against the daily limit here, and the read-then-write pair can drop
// a concurrent increment. Day rollover happens purely by key rotation.
func (uc *ReadingUsecase) Increment(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, domain.ValidationError{Field: "userId"}
	}

	key := domain.ReadingKey(userID, domain.DateKey(time.Now()))

	var count int
	if _, err := uc.store.Get(ctx, key, &count); err != nil {
		return 0, errors.Wrap(err, "ReadingUsecase.Increment: load counter")
	}
	count++
	if err := uc.store.Set(ctx, key, count); err != nil {
		return 0, errors.Wrap(err, "ReadingUsecase.Increment: write counter")
	}

	return count, nil
}
