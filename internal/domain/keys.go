package domain

import (
	"fmt"
	"time"
)

// All cross-request coordination happens through these keys, so every
// service must derive them here and nowhere else.

// DateKey formats t as the UTC calendar date used to partition daily
// records (feed cache, reading counters).
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FeedKey addresses the shared daily feed for a calendar date.
func FeedKey(date string) string {
	return fmt.Sprintf("articles:feed:%s", date)
}

// ReadingKey addresses a user's reading counter for a calendar date.
func ReadingKey(userID, date string) string {
	return fmt.Sprintf("user:%s:reading:%s", userID, date)
}

// SavedArticleKey addresses one saved article record.
func SavedArticleKey(userID, articleID string) string {
	return fmt.Sprintf("user:%s:saved:%s", userID, articleID)
}

// SavedListKey addresses the ordered list of a user's saved article ids.
func SavedListKey(userID string) string {
	return fmt.Sprintf("user:%s:saved:list", userID)
}

// HighlightsKey addresses the highlight list for one (user, article) pair.
func HighlightsKey(userID, articleID string) string {
	return fmt.Sprintf("user:%s:article:%s:highlights", userID, articleID)
}

// ProfileKey addresses a user's profile record.
func ProfileKey(userID string) string {
	return fmt.Sprintf("user:%s:profile", userID)
}
