package model

import (
	"time"
)

type InvestmentPlan struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Year        int       `gorm:"not null" json:"year"`
	TotalBudget float64   `gorm:"column:total_budget" json:"total_budget"`
	Status      string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (InvestmentPlan) TableName() string {
	return "investment_plans"
}

type InvestmentItem struct {
	ID            uint64  `gorm:"primaryKey"`
	PlanID        uint64  `gorm:"not null;index:idx_ii_plan" json:"plan_id"`
	HotspotID     uint64  `gorm:"column:hotspot_id" json:"hotspot_id"`
	ItemType      string  `gorm:"type:varchar(30)" json:"item_type"`
	LocationLat   float64 `gorm:"column:location_lat" json:"location_lat"`
	LocationLon   float64 `gorm:"column:location_lon" json:"location_lon"`
	EstimatedCost float64 `gorm:"column:estimated_cost" json:"estimated_cost"`
	PriorityScore float64 `gorm:"column:priority_score" json:"priority_score"`
	Status        string  `gorm:"type:varchar(20)" json:"status"`
}

func (InvestmentItem) TableName() string {
	return "investment_items"
}
