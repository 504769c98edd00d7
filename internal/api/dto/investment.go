package dto

type InvestmentPlanDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	TotalBudget float64 `json:"total_budget"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type InvestmentItemDTO struct {
	ID            uint64  `json:"id"`
	PlanID        uint64  `json:"plan_id"`
	HotspotID     uint64  `json:"hotspot_id"`
	ItemType      string  `json:"item_type"`
	LocationLat   float64 `json:"location_lat"`
	LocationLon   float64 `json:"location_lon"`
	EstimatedCost float64 `json:"estimated_cost"`
	PriorityScore float64 `json:"priority_score"`
	Status        string  `json:"status"`
}
