package domain

const (
	// DailyLimit is the advisory per-day reading limit returned to
	// clients. It is display-only and never enforced server-side.
	DailyLimit = 5

	// FeedSize is the number of articles generated per daily feed.
	FeedSize = 7

	// DefaultUserID is used when a GET request carries no userId.
	DefaultUserID = "default"
)

const (
	DefaultDisplayName = "Reader"
	DefaultBio         = "Reading slowly, on purpose."
)
