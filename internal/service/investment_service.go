package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type InvestmentService interface {
	ListPlans(ctx context.Context) ([]*dto.InvestmentPlanDTO, error)
	GetPlanItems(ctx context.Context, planID uint64) ([]*dto.InvestmentItemDTO, error)
}

type investmentServiceImpl struct {
	investmentRepo repository.InvestmentRepo
}

func NewInvestmentService(investmentRepo repository.InvestmentRepo) InvestmentService {
	return &investmentServiceImpl{investmentRepo: investmentRepo}
}

func (s *investmentServiceImpl) ListPlans(ctx context.Context) ([]*dto.InvestmentPlanDTO, error) {
	plans, err := s.investmentRepo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.InvestmentPlanDTO, 0, len(plans))
	for _, plan := range plans {
		result = append(result, &dto.InvestmentPlanDTO{
			ID:          plan.ID,
			Title:       plan.Title,
			Year:        plan.Year,
			TotalBudget: plan.TotalBudget,
			Status:      plan.Status,
			CreatedAt:   plan.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// GetPlanItems returns the plan's items ranked by priority.
func (s *investmentServiceImpl) GetPlanItems(ctx context.Context, planID uint64) ([]*dto.InvestmentItemDTO, error) {
	if _, err := s.investmentRepo.GetPlan(ctx, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	items, err := s.investmentRepo.ListItemsByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.InvestmentItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, &dto.InvestmentItemDTO{
			ID:            item.ID,
			PlanID:        item.PlanID,
			HotspotID:     item.HotspotID,
			ItemType:      item.ItemType,
			LocationLat:   item.LocationLat,
			LocationLon:   item.LocationLon,
			EstimatedCost: item.EstimatedCost,
			PriorityScore: item.PriorityScore,
			Status:        item.Status,
		})
	}
	return result, nil
}
