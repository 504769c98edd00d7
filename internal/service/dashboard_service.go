package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/repository"
	"context"

	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type dashboardServiceImpl struct {
	crosswalkRepo  repository.CrosswalkRepo
	signalRepo     repository.SignalRepo
	hotspotRepo    repository.HotspotRepo
	suggestionRepo repository.SuggestionRepo
}

func NewDashboardService(
	crosswalkRepo repository.CrosswalkRepo,
	signalRepo repository.SignalRepo,
	hotspotRepo repository.HotspotRepo,
	suggestionRepo repository.SuggestionRepo,
) DashboardService {
	return &dashboardServiceImpl{
		crosswalkRepo:  crosswalkRepo,
		signalRepo:     signalRepo,
		hotspotRepo:    hotspotRepo,
		suggestionRepo: suggestionRepo,
	}
}

// GetStats fans the five independent counts out concurrently.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{}
	var withSignal int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalCrosswalks, err = s.crosswalkRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		withSignal, err = s.crosswalkRepo.CountWithSignal(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalSignals, err = s.signalRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.AccidentHotspots, err = s.hotspotRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.OpenSuggestions, err = s.suggestionRepo.CountOpen(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.TotalCrosswalks > 0 {
		stats.SignalCoverageRate = float64(withSignal) / float64(stats.TotalCrosswalks)
	}
	return stats, nil
}
