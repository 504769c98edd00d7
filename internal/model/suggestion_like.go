package model

import (
	"time"
)

// SuggestionLike is the source of truth for "has this user liked this
// suggestion". The composite primary key doubles as the unique constraint
// that arbitrates concurrent toggles.
type SuggestionLike struct {
	SuggestionID uint64    `gorm:"primaryKey;index:idx_sl_suggestion" json:"suggestion_id"`
	UserID       uint64    `gorm:"primaryKey" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SuggestionLike) TableName() string {
	return "suggestion_likes"
}
