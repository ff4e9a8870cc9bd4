package domain

// Profile is the per-user profile record. JoinedAt is set when the
// profile is first provisioned and never changes afterwards.
type Profile struct {
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	Bio         string  `json:"bio"`
	Avatar      *string `json:"avatar"`
	JoinedAt    string  `json:"joinedAt"`
}

// ProfileStats are derived on every profile read, never stored.
// TotalHighlights only counts highlights on currently saved articles.
type ProfileStats struct {
	SavedArticles   int `json:"savedArticles"`
	TotalHighlights int `json:"totalHighlights"`
}
