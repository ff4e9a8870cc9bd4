package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sanctum-app/sanctum/internal/domain"
)

func TestGetFeedGeneratesAndCaches(t *testing.T) {
	store := newFakeStore()
	uc := NewFeedUsecase(store)

	first, err := uc.GetFeed(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, first.Articles, domain.FeedSize)
	require.Equal(t, domain.DailyLimit, first.DailyLimit)
	require.Equal(t, 0, first.ReadingCount)

	for _, a := range first.Articles {
		require.NotEmpty(t, a.ID)
		require.Len(t, a.Topics, 2)
		require.GreaterOrEqual(t, a.ReadTime, 5)
		require.LessOrEqual(t, a.ReadTime, 14)
	}

	// A second call the same day must serve the cached list, not
	// regenerate it.
	second, err := uc.GetFeed(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, first.Articles, second.Articles)
}

func TestGetFeedSharedAcrossUsers(t *testing.T) {
	store := newFakeStore()
	uc := NewFeedUsecase(store)

	a, err := uc.GetFeed(context.Background(), "u1")
	require.NoError(t, err)
	b, err := uc.GetFeed(context.Background(), "u2")
	require.NoError(t, err)
	require.Equal(t, a.Articles, b.Articles)
}

func TestGetFeedReportsReadingCount(t *testing.T) {
	store := newFakeStore()
	today := domain.DateKey(time.Now())
	require.NoError(t, store.Set(context.Background(), domain.ReadingKey("u1", today), 3))

	uc := NewFeedUsecase(store)
	res, err := uc.GetFeed(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 3, res.ReadingCount)
}

func TestGetFeedStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.fail = errStoreDown

	uc := NewFeedUsecase(store)
	_, err := uc.GetFeed(context.Background(), "u1")
	require.ErrorIs(t, err, errStoreDown)
}
