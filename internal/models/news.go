package models

// NewsItem is a market news headline shown in the news panel. The feed is
// seeded locally; there is no upstream news source.
type NewsItem struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}
