package dto

type AlertCreateDTO struct {
	AlertType string `json:"alert_type" binding:"required,oneof=ACCIDENT_SPIKE FACILITY_FAULT SUGGESTION_UPDATE SYSTEM"`
	Title     string `json:"title" binding:"required" validate:"min=1,max=255"`
	Message   string `json:"message" binding:"required" validate:"min=1,max=2000"`
	Severity  string `json:"severity" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Sido      string `json:"sido" validate:"max=50"`
	Sigungu   string `json:"sigungu" validate:"max=50"`
	UserID    uint64 `json:"user_id"`
}

type AlertDTO struct {
	ID        string `json:"id"`
	AlertType string `json:"alert_type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Sido      string `json:"sido,omitempty"`
	Sigungu   string `json:"sigungu,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
	ReadAt    string `json:"read_at,omitempty"`
}
