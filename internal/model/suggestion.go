package model

import (
	"time"
)

type SuggestionType string

const (
	TypeSignalInstall    SuggestionType = "SIGNAL_INSTALL"
	TypeCrosswalkInstall SuggestionType = "CROSSWALK_INSTALL"
	TypeOtherFacility    SuggestionType = "OTHER_FACILITY"
)

func (t SuggestionType) Valid() bool {
	switch t {
	case TypeSignalInstall, TypeCrosswalkInstall, TypeOtherFacility:
		return true
	}
	return false
}

type SuggestionStatus string

const (
	StatusPending   SuggestionStatus = "PENDING"
	StatusReviewing SuggestionStatus = "REVIEWING"
	StatusApproved  SuggestionStatus = "APPROVED"
	StatusRejected  SuggestionStatus = "REJECTED"
	StatusCompleted SuggestionStatus = "COMPLETED"
)

func (s SuggestionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Suggestion is a citizen improvement request. The three counters are
// denormalized caches over suggestion_likes / suggestion_comments / views and
// are only ever touched through single-statement conditional updates.
// PriorityScore is likewise a cache; the ranking source of truth is
// service.PriorityScore over the counters.
type Suggestion struct {
	ID             uint64           `gorm:"primaryKey"`
	UserID         uint64           `gorm:"not null;index:idx_sg_user" json:"user_id"`
	Title          string           `gorm:"type:varchar(255);not null" json:"title"`
	Content        string           `gorm:"type:text;not null" json:"content"`
	LocationLat    float64          `gorm:"column:location_lat" json:"location_lat"`
	LocationLon    float64          `gorm:"column:location_lon" json:"location_lon"`
	Address        string           `gorm:"type:varchar(255)" json:"address"`
	Sido           string           `gorm:"type:varchar(50)" json:"sido"`
	Sigungu        string           `gorm:"type:varchar(50);index:idx_sg_sigungu" json:"sigungu"`
	SuggestionType SuggestionType   `gorm:"type:varchar(30);not null" json:"suggestion_type"`
	Status         SuggestionStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_sg_status" json:"status"`
	AdminResponse  string           `gorm:"type:text" json:"admin_response"`
	ViewCount      int              `gorm:"not null;default:0" json:"view_count"`
	LikeCount      int              `gorm:"not null;default:0" json:"like_count"`
	CommentCount   int              `gorm:"not null;default:0" json:"comment_count"`
	PriorityScore  int              `gorm:"not null;default:0" json:"priority_score"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}
