package es

import "time"

// SuggestionES is the search projection of a suggestion. Counters are kept
// for ranking only; the store row stays authoritative.
type SuggestionES struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Address        string    `json:"address"`
	Sido           string    `json:"sido"`
	Sigungu        string    `json:"sigungu"`
	SuggestionType string    `json:"suggestion_type"`
	Status         string    `json:"status"`
	LikeCount      int64     `json:"like_count"`
	CommentCount   int64     `json:"comment_count"`
	ViewCount      int64     `json:"view_count"`
	PriorityScore  int       `json:"priority_score"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
