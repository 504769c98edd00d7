package repository

import (
	"PedGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

// Bounds is a lat/lon viewport. Callers guarantee MinLat <= MaxLat and
// MinLon <= MaxLon before the query runs.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

type CrosswalkRepo interface {
	FindInBounds(ctx context.Context, b Bounds) ([]*model.Crosswalk, error)
	Count(ctx context.Context) (int64, error)
	CountWithSignal(ctx context.Context) (int64, error)
}

type CrosswalkRepoImpl struct {
	db *gorm.DB
}

func NewCrosswalkRepo(db *gorm.DB) CrosswalkRepo {
	return &CrosswalkRepoImpl{db: db}
}

func (s *CrosswalkRepoImpl) FindInBounds(ctx context.Context, b Bounds) ([]*model.Crosswalk, error) {
	var rows []*model.Crosswalk
	err := s.db.WithContext(ctx).
		Where("crosswalk_lat BETWEEN ? AND ? AND crosswalk_lon BETWEEN ? AND ?",
			b.MinLat, b.MaxLat, b.MinLon, b.MaxLon).
		Find(&rows).Error
	return rows, err
}

func (s *CrosswalkRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Crosswalk{}).Count(&count).Error
	return count, err
}

func (s *CrosswalkRepoImpl) CountWithSignal(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Crosswalk{}).
		Where("has_signal = ?", true).
		Count(&count).Error
	return count, err
}

type SignalRepo interface {
	FindInBounds(ctx context.Context, b Bounds) ([]*model.TrafficSignal, error)
	Count(ctx context.Context) (int64, error)
}

type SignalRepoImpl struct {
	db *gorm.DB
}

func NewSignalRepo(db *gorm.DB) SignalRepo {
	return &SignalRepoImpl{db: db}
}

func (s *SignalRepoImpl) FindInBounds(ctx context.Context, b Bounds) ([]*model.TrafficSignal, error) {
	var rows []*model.TrafficSignal
	err := s.db.WithContext(ctx).
		Where("signal_lat BETWEEN ? AND ? AND signal_lon BETWEEN ? AND ?",
			b.MinLat, b.MaxLat, b.MinLon, b.MaxLon).
		Find(&rows).Error
	return rows, err
}

func (s *SignalRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.TrafficSignal{}).Count(&count).Error
	return count, err
}

type HotspotRepo interface {
	FindInBounds(ctx context.Context, b Bounds) ([]*model.AccidentHotspot, error)
	FindByDistrictCode(ctx context.Context, code string) ([]*model.AccidentHotspot, error)
	Count(ctx context.Context) (int64, error)
}

type HotspotRepoImpl struct {
	db *gorm.DB
}

func NewHotspotRepo(db *gorm.DB) HotspotRepo {
	return &HotspotRepoImpl{db: db}
}

func (s *HotspotRepoImpl) FindInBounds(ctx context.Context, b Bounds) ([]*model.AccidentHotspot, error) {
	var rows []*model.AccidentHotspot
	err := s.db.WithContext(ctx).
		Where("accident_lat BETWEEN ? AND ? AND accident_lon BETWEEN ? AND ?",
			b.MinLat, b.MaxLat, b.MinLon, b.MaxLon).
		Find(&rows).Error
	return rows, err
}

func (s *HotspotRepoImpl) FindByDistrictCode(ctx context.Context, code string) ([]*model.AccidentHotspot, error) {
	var rows []*model.AccidentHotspot
	err := s.db.WithContext(ctx).
		Where("district_code = ?", code).
		Find(&rows).Error
	return rows, err
}

func (s *HotspotRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.AccidentHotspot{}).Count(&count).Error
	return count, err
}
