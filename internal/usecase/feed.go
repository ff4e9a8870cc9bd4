package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanctum-app/sanctum/internal/domain"
)

var tracer = otel.Tracer("usecase")

// FeedResult is the combined payload for a feed request.
type FeedResult struct {
	Articles     []domain.Article `json:"articles"`
	ReadingCount int              `json:"readingCount"`
	DailyLimit   int              `json:"dailyLimit"`
}

type FeedUsecase struct {
	store KVStore
}

func NewFeedUsecase(store KVStore) *FeedUsecase {
	return &FeedUsecase{store: store}
}

// GetFeed returns today's shared article feed together with the user's
// reading count. The feed is generated lazily once per UTC day; if two
// requests race on an empty day both generate and the last write wins,
// which is acceptable for sample content.
func (uc *FeedUsecase) GetFeed(ctx context.Context, userID string) (FeedResult, error) {
	ctx, span := tracer.Start(ctx, "Feed.Usecase.GetFeed",
		trace.WithAttributes(attribute.String("userId", userID)))
	defer span.End()

	today := domain.DateKey(time.Now())

	var articles []domain.Article
	found, err := uc.store.Get(ctx, domain.FeedKey(today), &articles)
	if err != nil {
		return FeedResult{}, errors.Wrap(err, "FeedUsecase.GetFeed: load feed")
	}
	if !found {
		articles = generateDailyFeed(time.Now())
		if err := uc.store.Set(ctx, domain.FeedKey(today), articles); err != nil {
			return FeedResult{}, errors.Wrap(err, "FeedUsecase.GetFeed: cache feed")
		}
	}

	var count int
	if _, err := uc.store.Get(ctx, domain.ReadingKey(userID, today), &count); err != nil {
		return FeedResult{}, errors.Wrap(err, "FeedUsecase.GetFeed: load reading count")
	}

	return FeedResult{
		Articles:     articles,
		ReadingCount: count,
		DailyLimit:   domain.DailyLimit,
	}, nil
}

var feedPlatforms = []string{"Brunch", "Medium", "Velog", "Substack", "Longreads"}

var feedTopics = []string{
	"design philosophy", "cognitive psychology", "UX research",
	"product thinking", "creativity", "systems thinking",
	"behavioral economics", "writing", "critical thinking",
	"learning theory",
}

var feedTitles = []string{
	"The Depth That Slow Thinking Brings to Design",
	"The Economics of Attention in a Digital Age",
	"Why Good Questions Matter More Than Good Answers",
	"Between System 1 and System 2",
	"Creativity Begins with Constraints",
	"Reading, Writing, and Thinking",
	"Interfaces That Lower Cognitive Load",
}

var feedThumbnails = []string{
	"https://images.unsplash.com/photo-1546098073-4d874a1c59f8?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1639414839192-0562f4065ffd?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1763531414423-7c9e3642910e?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1729105140273-b5e886a4f999?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1656877280226-ebf9ea8b1303?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1513001900722-370f803f498d?w=400&h=300&fit=crop",
}

func generateDailyFeed(now time.Time) []domain.Article {
	articles := make([]domain.Article, domain.FeedSize)
	for i := range articles {
		articles[i] = domain.Article{
			ID:           fmt.Sprintf("article-%d-%d", now.UnixMilli(), i),
			Title:        feedTitles[i%len(feedTitles)],
			Platform:     feedPlatforms[i%len(feedPlatforms)],
			PlatformIcon: "📚",
			Topics: []string{
				feedTopics[rand.IntN(len(feedTopics))],
				feedTopics[rand.IntN(len(feedTopics))],
			},
			ReadTime:  rand.IntN(10) + 5,
			Thumbnail: feedThumbnails[i%len(feedThumbnails)],
			Author:    "Anonymous",
			Excerpt:   "An exploration of deep thinking and deliberate reading...",
			Content:   sampleContent,
		}
	}
	return articles
}

const sampleContent = `# The Value of Slow Thinking

The digital age pushes us toward ever faster consumption of
information. Real understanding and insight, though, come from slow
thinking.

## System 1 and System 2

Recall the two modes of thought Daniel Kahneman described. System 1 is
fast and intuitive; System 2 is slow and deliberate.

Deep learning and creative thought belong to System 2. When we read,
especially when the ideas are hard, we have to switch it on.

## Deliberate Reading

What is deliberate reading? Not letting the eyes slide over the words,
but following the author's argument, raising questions, and connecting
the text to our own experience.

That kind of reading takes time. The time is not wasted. It is the
most valuable investment there is.

## In Closing

In an age of fast consumption, slow thinking and deliberate reading
are a refuge. That is what a reading sanctuary is for.`
