package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sanctum-app/sanctum/internal/domain"
)

type LibraryUsecase struct {
	store KVStore
}

func NewLibraryUsecase(store KVStore) *LibraryUsecase {
	return &LibraryUsecase{store: store}
}

// SaveArticle stores the article record and prepends its id onto the
// user's saved list unless it is already there. The record write and
// the list write are two separate store calls; a concurrent save for
// the same user can lose one of the list updates.
func (uc *LibraryUsecase) SaveArticle(ctx context.Context, userID, articleID string, article domain.OpenRecord) error {
	if userID == "" || articleID == "" {
		return domain.ValidationError{}
	}

	record := domain.OpenRecord{}
	for k, v := range article {
		record[k] = v
	}
	record["savedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := uc.store.Set(ctx, domain.SavedArticleKey(userID, articleID), record); err != nil {
		return errors.Wrap(err, "LibraryUsecase.SaveArticle: write record")
	}

	var saved []string
	if _, err := uc.store.Get(ctx, domain.SavedListKey(userID), &saved); err != nil {
		return errors.Wrap(err, "LibraryUsecase.SaveArticle: load list")
	}
	for _, id := range saved {
		if id == articleID {
			return nil
		}
	}
	saved = append([]string{articleID}, saved...)
	if err := uc.store.Set(ctx, domain.SavedListKey(userID), saved); err != nil {
		return errors.Wrap(err, "LibraryUsecase.SaveArticle: write list")
	}

	return nil
}

// SavedArticles returns the user's saved records in list order. Ids
// whose record is missing are skipped rather than failing the request;
// a crash between the two writes in SaveArticle can leave such ids.
func (uc *LibraryUsecase) SavedArticles(ctx context.Context, userID string) ([]domain.OpenRecord, error) {
	var saved []string
	if _, err := uc.store.Get(ctx, domain.SavedListKey(userID), &saved); err != nil {
		return nil, errors.Wrap(err, "LibraryUsecase.SavedArticles: load list")
	}

	articles := []domain.OpenRecord{}
	for _, articleID := range saved {
		var record domain.OpenRecord
		found, err := uc.store.Get(ctx, domain.SavedArticleKey(userID, articleID), &record)
		if err != nil {
			return nil, errors.Wrap(err, "LibraryUsecase.SavedArticles: load record")
		}
		if found {
			articles = append(articles, record)
		}
	}

	return articles, nil
}
