package repository

import (
	"PedGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

// SuggestionQuery is the filter set for the paginated listing. All filters
// are conjunctive and optional (zero value = no filter). Limit/Offset are
// assumed already clamped by the service.
type SuggestionQuery struct {
	Status model.SuggestionStatus
	Type   model.SuggestionType
	Region string
	Search string
	Limit  int
	Offset int
}

type StatusCount struct {
	Status model.SuggestionStatus
	Count  int64
}

type SuggestionRepo interface {
	Create(ctx context.Context, suggestion *model.Suggestion) error
	GetByID(ctx context.Context, id uint64) (*model.Suggestion, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Suggestion, error)
	Search(ctx context.Context, q SuggestionQuery) ([]*model.Suggestion, int64, error)
	UpdateStatus(ctx context.Context, id uint64, status model.SuggestionStatus, adminResponse string) error
	UpdateCounts(ctx context.Context, id uint64, likes, comments int64, priorityScore int) error
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountOpen(ctx context.Context) (int64, error)
}

type SuggestionRepoImpl struct {
	db *gorm.DB
}

func NewSuggestionRepo(db *gorm.DB) SuggestionRepo {
	return &SuggestionRepoImpl{db: db}
}

func (s *SuggestionRepoImpl) Create(ctx context.Context, suggestion *model.Suggestion) error {
	return s.db.WithContext(ctx).Create(suggestion).Error
}

func (s *SuggestionRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := s.db.WithContext(ctx).Preload("User").First(&suggestion, id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (s *SuggestionRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Suggestion, error) {
	var suggestions []*model.Suggestion
	err := s.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&suggestions).Error
	return suggestions, err
}

// Search runs the filtered page plus the total count over the same
// predicate. Ordering is created_at DESC with id DESC as tiebreak so pages
// stay stable under concurrent inserts.
func (s *SuggestionRepoImpl) Search(ctx context.Context, q SuggestionQuery) ([]*model.Suggestion, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Suggestion{})
	base = applyFilters(base, q)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suggestions []*model.Suggestion
	err := applyFilters(s.db.WithContext(ctx).Preload("User"), q).
		Order("created_at DESC, id DESC").
		Limit(q.Limit).Offset(q.Offset).
		Find(&suggestions).Error
	if err != nil {
		return nil, 0, err
	}
	return suggestions, total, nil
}

func applyFilters(tx *gorm.DB, q SuggestionQuery) *gorm.DB {
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Type != "" {
		tx = tx.Where("suggestion_type = ?", q.Type)
	}
	if q.Region != "" {
		tx = tx.Where("sigungu LIKE ? OR address LIKE ?", q.Region+"%", q.Region+"%")
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	return tx
}

func (s *SuggestionRepoImpl) UpdateStatus(ctx context.Context, id uint64, status model.SuggestionStatus, adminResponse string) error {
	return s.db.WithContext(ctx).Model(&model.Suggestion{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"admin_response": adminResponse,
		}).Error
}

// UpdateCounts reconciles the denormalized counters against the truth tables
// (nightly job); view_count is left alone since the row is its own truth.
func (s *SuggestionRepoImpl) UpdateCounts(ctx context.Context, id uint64, likes, comments int64, priorityScore int) error {
	return s.db.WithContext(ctx).Model(&model.Suggestion{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"like_count":     likes,
			"comment_count":  comments,
			"priority_score": priorityScore,
		}).Error
}

func (s *SuggestionRepoImpl) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := s.db.WithContext(ctx).Model(&model.Suggestion{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (s *SuggestionRepoImpl) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Suggestion{}).
		Where("status NOT IN ?", []model.SuggestionStatus{model.StatusRejected, model.StatusCompleted}).
		Count(&count).Error
	return count, err
}
