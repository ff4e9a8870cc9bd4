package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanctum-app/sanctum/internal/domain"
)

type ProfileUsecase struct {
	store KVStore
}

func NewProfileUsecase(store KVStore) *ProfileUsecase {
	return &ProfileUsecase{store: store}
}

// GetProfile returns the user's profile, provisioning a default record
// on first sight. There is no user registry in this core, so any
// previously unseen userId silently gets a profile. Stats are derived
// on every call by scanning the saved list; totalHighlights counts
// highlights on saved articles only.
func (uc *ProfileUsecase) GetProfile(ctx context.Context, userID string) (domain.Profile, domain.ProfileStats, error) {
	ctx, span := tracer.Start(ctx, "Profile.Usecase.GetProfile",
		trace.WithAttributes(attribute.String("userId", userID)))
	defer span.End()

	var profile domain.Profile
	found, err := uc.store.Get(ctx, domain.ProfileKey(userID), &profile)
	if err != nil {
		return domain.Profile{}, domain.ProfileStats{}, errors.Wrap(err, "ProfileUsecase.GetProfile: load profile")
	}
	if !found {
		profile = domain.Profile{
			UserID:      userID,
			DisplayName: domain.DefaultDisplayName,
			Bio:         domain.DefaultBio,
			Avatar:      nil,
			JoinedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := uc.store.Set(ctx, domain.ProfileKey(userID), profile); err != nil {
			return domain.Profile{}, domain.ProfileStats{}, errors.Wrap(err, "ProfileUsecase.GetProfile: provision profile")
		}
	}

	var saved []string
	if _, err := uc.store.Get(ctx, domain.SavedListKey(userID), &saved); err != nil {
		return domain.Profile{}, domain.ProfileStats{}, errors.Wrap(err, "ProfileUsecase.GetProfile: load saved list")
	}

	total := 0
	for _, articleID := range saved {
		var highlights []domain.OpenRecord
		if _, err := uc.store.Get(ctx, domain.HighlightsKey(userID, articleID), &highlights); err != nil {
			return domain.Profile{}, domain.ProfileStats{}, errors.Wrap(err, "ProfileUsecase.GetProfile: load highlights")
		}
		total += len(highlights)
	}

	stats := domain.ProfileStats{
		SavedArticles:   len(saved),
		TotalHighlights: total,
	}

	return profile, stats, nil
}
