package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanctum-app/sanctum/internal/domain"
)

func TestAddHighlightPrepends(t *testing.T) {
	store := newFakeStore()
	uc := NewHighlightUsecase(store)
	ctx := context.Background()

	first, err := uc.AddHighlight(ctx, "u1", "a1", domain.OpenRecord{"text": "one", "color": "yellow"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.AddHighlight(ctx, "u1", "a1", domain.OpenRecord{"text": "two", "color": "green"})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, "two", second[0]["text"])
	require.Equal(t, "one", second[1]["text"])
	require.NotEmpty(t, second[0]["id"])
	require.NotEmpty(t, second[0]["createdAt"])

	listed, err := uc.Highlights(ctx, "u1", "a1")
	require.NoError(t, err)
	require.Equal(t, second[0]["text"], listed[0]["text"])
	require.Len(t, listed, 2)
}

func TestAddHighlightStoresColorAsGiven(t *testing.T) {
	uc := NewHighlightUsecase(newFakeStore())

	// Color membership is a display concern; the service stores
	// whatever string the client sent.
	highlights, err := uc.AddHighlight(context.Background(), "u1", "a1", domain.OpenRecord{"text": "x", "color": "chartreuse"})
	require.NoError(t, err)
	require.Equal(t, "chartreuse", highlights[0]["color"])
}

func TestAddHighlightValidation(t *testing.T) {
	uc := NewHighlightUsecase(newFakeStore())
	ctx := context.Background()

	_, err := uc.AddHighlight(ctx, "", "a1", domain.OpenRecord{"text": "x"})
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.AddHighlight(ctx, "u1", "", domain.OpenRecord{"text": "x"})
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.AddHighlight(ctx, "u1", "a1", nil)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestHighlightsDefaultEmpty(t *testing.T) {
	uc := NewHighlightUsecase(newFakeStore())

	highlights, err := uc.Highlights(context.Background(), "u1", "a1")
	require.NoError(t, err)
	require.Empty(t, highlights)
}

func TestConcurrentAddHighlightMayLoseOne(t *testing.T) {
	store := newFakeStore()
	uc := NewHighlightUsecase(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddHighlight(ctx, "u1", "a1", domain.OpenRecord{"text": "race"})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	// The list append is read-then-write with no atomicity, so two
	// concurrent adds from an empty list legitimately end with either
	// one or two entries. Asserting exactly 2 here would be wrong
	// until the store grows a conditional-put primitive.
	highlights, err := uc.Highlights(ctx, "u1", "a1")
	require.NoError(t, err)
	require.Contains(t, []int{1, 2}, len(highlights))
}
