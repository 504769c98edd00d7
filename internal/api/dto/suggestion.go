package dto

type SuggestionCreateDTO struct {
	Title          string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Content        string  `json:"content" binding:"required" validate:"min=1,max=5000"`
	LocationLat    float64 `json:"location_lat" binding:"required"`
	LocationLon    float64 `json:"location_lon" binding:"required"`
	Address        string  `json:"address" validate:"max=255"`
	Sido           string  `json:"sido" validate:"max=50"`
	Sigungu        string  `json:"sigungu" validate:"max=50"`
	SuggestionType string  `json:"suggestion_type" binding:"required,oneof=SIGNAL_INSTALL CROSSWALK_INSTALL OTHER_FACILITY"`
}

// SuggestionListQuery binds the listing filters off the query string. Page
// and PageSize are clamped by the service, not rejected.
type SuggestionListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
	Type     string `form:"type"`
	Region   string `form:"region"`
	Search   string `form:"search"`
}

type SuggestionDTO struct {
	ID             uint64  `json:"id"`
	Title          string  `json:"title"`
	Address        string  `json:"address"`
	Sigungu        string  `json:"sigungu"`
	SuggestionType string  `json:"suggestion_type"`
	Status         string  `json:"status"`
	ViewCount      int64   `json:"view_count"`
	LikeCount      int64   `json:"like_count"`
	CommentCount   int64   `json:"comment_count"`
	PriorityScore  int     `json:"priority_score"`
	CreatedAt      string  `json:"created_at"`
	UserID         uint64  `json:"user_id"`
	UserName       string  `json:"user_name"`
	LocationLat    float64 `json:"location_lat"`
	LocationLon    float64 `json:"location_lon"`
}

type SuggestionDetailDTO struct {
	SuggestionDTO
	Content       string `json:"content"`
	AdminResponse string `json:"admin_response,omitempty"`
	UpdatedAt     string `json:"updated_at"`
	IsLiked       bool   `json:"is_liked"`
}

type StatusUpdateDTO struct {
	Status        string `json:"status" binding:"required,oneof=PENDING REVIEWING APPROVED REJECTED COMPLETED"`
	AdminResponse string `json:"admin_response" validate:"max=2000"`
}

type CommentCreateDTO struct {
	Content  string `json:"content" binding:"required" validate:"min=1,max=1000"`
	ParentID uint64 `json:"parent_id"`
}

type CommentDTO struct {
	ID           uint64 `json:"id"`
	SuggestionID uint64 `json:"suggestion_id"`
	Content      string `json:"content"`
	ParentID     uint64 `json:"parent_id"`
	CreatedAt    string `json:"created_at"`
	UserID       uint64 `json:"user_id"`
	UserName     string `json:"user_name"`
}

type ToggleLikeDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type SuggestionStatsDTO struct {
	TotalCount     int64 `json:"total_count"`
	PendingCount   int64 `json:"pending_count"`
	ReviewingCount int64 `json:"reviewing_count"`
	ApprovedCount  int64 `json:"approved_count"`
	RejectedCount  int64 `json:"rejected_count"`
	CompletedCount int64 `json:"completed_count"`
}
