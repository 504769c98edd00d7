package service

import (
	"PedGuard/internal/repository"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

type KpiService interface {
	GetSummary(ctx context.Context) (json.RawMessage, error)
}

type kpiServiceImpl struct {
	kpiRepo repository.KpiRepo
}

func NewKpiService(kpiRepo repository.KpiRepo) KpiService {
	return &kpiServiceImpl{kpiRepo: kpiRepo}
}

// GetSummary passes the database-built KPI JSON through after shape
// validation. An empty view yields an empty object, never an error.
func (s *kpiServiceImpl) GetSummary(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.kpiRepo.FetchSummaryJSON(ctx)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid([]byte(raw)) {
		log.ErrorContext(ctx, "kpi view produced invalid json")
		return nil, UnExpectedError
	}
	return json.RawMessage(raw), nil
}
