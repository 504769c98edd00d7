package service

import (
	"PedGuard/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInvestmentRepo struct {
	plans map[uint64]*model.InvestmentPlan
	items map[uint64][]*model.InvestmentItem
}

func (f *fakeInvestmentRepo) ListPlans(_ context.Context) ([]*model.InvestmentPlan, error) {
	out := make([]*model.InvestmentPlan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeInvestmentRepo) GetPlan(_ context.Context, id uint64) (*model.InvestmentPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeInvestmentRepo) ListItemsByPlan(_ context.Context, planID uint64) ([]*model.InvestmentItem, error) {
	return f.items[planID], nil
}

func TestGetPlanItems(t *testing.T) {
	t.Parallel()

	repo := &fakeInvestmentRepo{
		plans: map[uint64]*model.InvestmentPlan{
			1: {ID: 1, Title: "2026 signal rollout", Year: 2026},
		},
		items: map[uint64][]*model.InvestmentItem{
			1: {
				{ID: 10, PlanID: 1, ItemType: "SIGNAL_INSTALL", PriorityScore: 92.5},
				{ID: 11, PlanID: 1, ItemType: "CROSSWALK_INSTALL", PriorityScore: 71.0},
			},
		},
	}
	svc := NewInvestmentService(repo)
	ctx := context.Background()

	items, err := svc.GetPlanItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint64(10), items[0].ID)
	assert.InDelta(t, 92.5, items[0].PriorityScore, 1e-9)

	_, err = svc.GetPlanItems(ctx, 999)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
