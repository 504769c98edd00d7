package repository

import (
	"context"

	"gorm.io/gorm"
)

// KpiRepo reads the pre-aggregated KPI summary the database builds as a
// single-row JSON view.
type KpiRepo interface {
	FetchSummaryJSON(ctx context.Context) (string, error)
}

type KpiRepoImpl struct {
	db *gorm.DB
}

func NewKpiRepo(db *gorm.DB) KpiRepo {
	return &KpiRepoImpl{db: db}
}

func (s *KpiRepoImpl) FetchSummaryJSON(ctx context.Context) (string, error) {
	var data string
	err := s.db.WithContext(ctx).
		Raw("SELECT data FROM v_kpi_summary_json LIMIT 1").
		Scan(&data).Error
	return data, err
}
