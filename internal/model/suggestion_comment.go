package model

import (
	"time"
)

type SuggestionComment struct {
	ID           uint64    `gorm:"primaryKey"`
	SuggestionID uint64    `gorm:"not null;index:idx_sc_suggestion" json:"suggestion_id"`
	UserID       uint64    `gorm:"not null" json:"user_id"`
	Content      string    `gorm:"type:varchar(1000);not null" json:"content"`
	ParentID     uint64    `gorm:"not null;default:0;index:idx_sc_parent" json:"parent_id"` // 0 means a root comment; replies nest one level only
	IsDeleted    bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SuggestionComment) TableName() string {
	return "suggestion_comments"
}
