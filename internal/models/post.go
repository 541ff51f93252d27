package models

import "strings"

// Post is a community feed entry. Author name and avatar are captured at
// creation time and are not kept in sync with later profile edits; the
// snapshot serves as an audit trail of who the author was when they posted.
type Post struct {
	Id         string    `json:"id"`
	UserId     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Likes      int       `json:"likes"`
	Comments   []Comment `json:"comments"`
	CreatedAt  int64     `json:"createdAt"`
}

// Comment is a sub-entity of a Post with its own author-name snapshot.
type Comment struct {
	Id        string `json:"id"`
	UserName  string `json:"userName"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// ParseTags splits a comma-separated tag line into trimmed tags, dropping
// empty items. Duplicates are kept as entered.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
