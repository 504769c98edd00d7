package repository

import (
	"PedGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

// AccidentRepo reads the ingested accident rows. Region codes are stored as
// fixed-width digit strings, so lexicographic range scans match numeric
// ranges.
type AccidentRepo interface {
	FindAll(ctx context.Context) ([]*model.Accident, error)
	FindBySigunguCodeRange(ctx context.Context, gte, lt string) ([]*model.Accident, error)
	FindBySigunguCode(ctx context.Context, code string) ([]*model.Accident, error)
}

type AccidentRepoImpl struct {
	db *gorm.DB
}

func NewAccidentRepo(db *gorm.DB) AccidentRepo {
	return &AccidentRepoImpl{db: db}
}

func (s *AccidentRepoImpl) FindAll(ctx context.Context) ([]*model.Accident, error) {
	var accidents []*model.Accident
	err := s.db.WithContext(ctx).Find(&accidents).Error
	return accidents, err
}

func (s *AccidentRepoImpl) FindBySigunguCodeRange(ctx context.Context, gte, lt string) ([]*model.Accident, error) {
	var accidents []*model.Accident
	err := s.db.WithContext(ctx).
		Where("sigungu_code >= ? AND sigungu_code < ?", gte, lt).
		Find(&accidents).Error
	return accidents, err
}

func (s *AccidentRepoImpl) FindBySigunguCode(ctx context.Context, code string) ([]*model.Accident, error) {
	var accidents []*model.Accident
	err := s.db.WithContext(ctx).
		Where("sigungu_code = ?", code).
		Find(&accidents).Error
	return accidents, err
}
