package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sanctum-app/sanctum/internal/domain"
)

type HighlightUsecase struct {
	store KVStore
}

func NewHighlightUsecase(store KVStore) *HighlightUsecase {
	return &HighlightUsecase{store: store}
}

// AddHighlight prepends a new highlight onto the (user, article) list
// and returns the updated list. The color field is stored as given;
// mapping it to a display treatment is the client's concern. The
// read-then-write pair is not atomic, so two concurrent adds can
// collapse into one surviving highlight.
func (uc *HighlightUsecase) AddHighlight(ctx context.Context, userID, articleID string, highlight domain.OpenRecord) ([]domain.OpenRecord, error) {
	if userID == "" || articleID == "" || highlight == nil {
		return nil, domain.ValidationError{}
	}

	key := domain.HighlightsKey(userID, articleID)

	var highlights []domain.OpenRecord
	if _, err := uc.store.Get(ctx, key, &highlights); err != nil {
		return nil, errors.Wrap(err, "HighlightUsecase.AddHighlight: load list")
	}

	now := time.Now().UTC()
	record := domain.OpenRecord{
		"id": fmt.Sprintf("highlight-%d", now.UnixMilli()),
	}
	for k, v := range highlight {
		record[k] = v
	}
	record["createdAt"] = now.Format(time.RFC3339)

	highlights = append([]domain.OpenRecord{record}, highlights...)
	if err := uc.store.Set(ctx, key, highlights); err != nil {
		return nil, errors.Wrap(err, "HighlightUsecase.AddHighlight: write list")
	}

	return highlights, nil
}

// Highlights returns the highlight list for one (user, article) pair,
// empty when none exist.
func (uc *HighlightUsecase) Highlights(ctx context.Context, userID, articleID string) ([]domain.OpenRecord, error) {
	highlights := []domain.OpenRecord{}
	if _, err := uc.store.Get(ctx, domain.HighlightsKey(userID, articleID), &highlights); err != nil {
		return nil, errors.Wrap(err, "HighlightUsecase.Highlights: load list")
	}
	return highlights, nil
}
