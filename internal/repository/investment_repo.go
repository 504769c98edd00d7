package repository

import (
	"PedGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

type InvestmentRepo interface {
	ListPlans(ctx context.Context) ([]*model.InvestmentPlan, error)
	GetPlan(ctx context.Context, id uint64) (*model.InvestmentPlan, error)
	ListItemsByPlan(ctx context.Context, planID uint64) ([]*model.InvestmentItem, error)
}

type InvestmentRepoImpl struct {
	db *gorm.DB
}

func NewInvestmentRepo(db *gorm.DB) InvestmentRepo {
	return &InvestmentRepoImpl{db: db}
}

func (s *InvestmentRepoImpl) ListPlans(ctx context.Context) ([]*model.InvestmentPlan, error) {
	var plans []*model.InvestmentPlan
	err := s.db.WithContext(ctx).Order("year DESC, id DESC").Find(&plans).Error
	return plans, err
}

func (s *InvestmentRepoImpl) GetPlan(ctx context.Context, id uint64) (*model.InvestmentPlan, error) {
	var plan model.InvestmentPlan
	err := s.db.WithContext(ctx).First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListItemsByPlan returns the plan's items ranked by priority, highest first.
func (s *InvestmentRepoImpl) ListItemsByPlan(ctx context.Context, planID uint64) ([]*model.InvestmentItem, error) {
	var items []*model.InvestmentItem
	err := s.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("priority_score DESC, id ASC").
		Find(&items).Error
	return items, err
}
