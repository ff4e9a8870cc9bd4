package domain

// Article is a generated feed entry. Articles a client asks us to save
// arrive as open records (map[string]any) and are stored untouched, so
// this struct only describes what the feed generator produces.
type Article struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Platform     string   `json:"platform"`
	PlatformIcon string   `json:"platformIcon"`
	Topics       []string `json:"topics"`
	ReadTime     int      `json:"readTime"`
	Thumbnail    string   `json:"thumbnail"`
	Author       string   `json:"author"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
}

// OpenRecord is a client-supplied JSON document. Fields the service
// does not read pass through storage unchanged.
type OpenRecord = map[string]any
