package repository

import (
	"PedGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

type DistrictRepo interface {
	FindAll(ctx context.Context) ([]*model.District, error)
	FindByCode(ctx context.Context, code string) (*model.District, error)
	FindByCodePrefix(ctx context.Context, prefix string) ([]*model.District, error)
	FindByNamePrefix(ctx context.Context, prefix string) ([]*model.District, error)
}

type DistrictRepoImpl struct {
	db *gorm.DB
}

func NewDistrictRepo(db *gorm.DB) DistrictRepo {
	return &DistrictRepoImpl{db: db}
}

func (s *DistrictRepoImpl) FindAll(ctx context.Context) ([]*model.District, error) {
	var districts []*model.District
	err := s.db.WithContext(ctx).Order("bjd_cd ASC").Find(&districts).Error
	return districts, err
}

func (s *DistrictRepoImpl) FindByCode(ctx context.Context, code string) (*model.District, error) {
	var district model.District
	err := s.db.WithContext(ctx).Where("bjd_cd = ?", code).First(&district).Error
	if err != nil {
		return nil, err
	}
	return &district, nil
}

func (s *DistrictRepoImpl) FindByCodePrefix(ctx context.Context, prefix string) ([]*model.District, error) {
	var districts []*model.District
	err := s.db.WithContext(ctx).
		Where("bjd_cd LIKE ?", prefix+"%").
		Order("bjd_cd ASC").
		Find(&districts).Error
	return districts, err
}

func (s *DistrictRepoImpl) FindByNamePrefix(ctx context.Context, prefix string) ([]*model.District, error) {
	var districts []*model.District
	err := s.db.WithContext(ctx).
		Where("bjd_nm LIKE ?", prefix+"%").
		Order("bjd_cd ASC").
		Find(&districts).Error
	return districts, err
}
