package repository

import (
	"PedGuard/internal/model"
	"context"

	"gorm.io/gorm"
)

// SuggestionActionRepo owns every mutation of the denormalized counters.
// Counter writes are single-statement conditional updates executed inside
// the same transaction as the truth-table row change, so a cancelled request
// never leaves a half-applied mutation and concurrent mutations serialize on
// the store's row locks.
type SuggestionActionRepo interface {
	AddLike(ctx context.Context, suggestionID, userID uint64) error
	RemoveLike(ctx context.Context, suggestionID, userID uint64) (bool, error)
	LikeExists(ctx context.Context, suggestionID, userID uint64) (bool, error)
	CountLikes(ctx context.Context, suggestionID uint64) (int64, error)

	AddComment(ctx context.Context, comment *model.SuggestionComment) error
	GetComment(ctx context.Context, commentID uint64) (*model.SuggestionComment, error)
	ListComments(ctx context.Context, suggestionID uint64) ([]*model.SuggestionComment, error)
	CountComments(ctx context.Context, suggestionID uint64) (int64, error)
	DeleteCommentTree(ctx context.Context, suggestionID, commentID uint64) (int64, error)

	IncrementView(ctx context.Context, suggestionID uint64) (int64, error)
	GetViewCount(ctx context.Context, suggestionID uint64) (int64, error)
}

type SuggestionActionRepoImpl struct {
	db *gorm.DB
}

func NewSuggestionActionRepo(db *gorm.DB) SuggestionActionRepo {
	return &SuggestionActionRepoImpl{db}
}

// AddLike inserts the like row and bumps the counter. A concurrent insert
// for the same pair loses on the composite primary key and surfaces as a
// duplicate-key error, leaving the counter untouched.
func (s *SuggestionActionRepoImpl) AddLike(ctx context.Context, suggestionID, userID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.SuggestionLike{SuggestionID: suggestionID, UserID: userID}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Suggestion{}).
			Where("id = ?", suggestionID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}

// RemoveLike deletes the like row; the counter only moves when a row was
// actually removed, and never below zero.
func (s *SuggestionActionRepoImpl) RemoveLike(ctx context.Context, suggestionID, userID uint64) (bool, error) {
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("suggestion_id = ? AND user_id = ?", suggestionID, userID).
			Delete(&model.SuggestionLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&model.Suggestion{}).
			Where("id = ?", suggestionID).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error
	})
	return removed, err
}

func (s *SuggestionActionRepoImpl) LikeExists(ctx context.Context, suggestionID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.SuggestionLike{}).
		Where("suggestion_id = ? AND user_id = ?", suggestionID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *SuggestionActionRepoImpl) CountLikes(ctx context.Context, suggestionID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.SuggestionLike{}).
		Where("suggestion_id = ?", suggestionID).
		Count(&count).Error
	return count, err
}

func (s *SuggestionActionRepoImpl) AddComment(ctx context.Context, comment *model.SuggestionComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Suggestion{}).
			Where("id = ?", comment.SuggestionID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
}

func (s *SuggestionActionRepoImpl) GetComment(ctx context.Context, commentID uint64) (*model.SuggestionComment, error) {
	var comment model.SuggestionComment
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", commentID, false).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *SuggestionActionRepoImpl) ListComments(ctx context.Context, suggestionID uint64) ([]*model.SuggestionComment, error) {
	var comments []*model.SuggestionComment
	err := s.db.WithContext(ctx).
		Where("suggestion_id = ? AND is_deleted = ?", suggestionID, false).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (s *SuggestionActionRepoImpl) CountComments(ctx context.Context, suggestionID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.SuggestionComment{}).
		Where("suggestion_id = ? AND is_deleted = ?", suggestionID, false).
		Count(&count).Error
	return count, err
}

// DeleteCommentTree soft-deletes a comment plus its direct replies and
// subtracts the removed rows from the counter in one transaction. Returns
// how many comments were removed.
func (s *SuggestionActionRepoImpl) DeleteCommentTree(ctx context.Context, suggestionID, commentID uint64) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.SuggestionComment{}).
			Where("(id = ? OR parent_id = ?) AND suggestion_id = ? AND is_deleted = ?",
				commentID, commentID, suggestionID, false).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		if removed == 0 {
			return nil
		}
		return tx.Model(&model.Suggestion{}).
			Where("id = ?", suggestionID).
			UpdateColumn("comment_count", gorm.Expr("GREATEST(comment_count - ?, 0)", removed)).Error
	})
	return removed, err
}

// IncrementView bumps the hit counter; RowsAffected tells the caller whether
// the suggestion exists at all.
func (s *SuggestionActionRepoImpl) IncrementView(ctx context.Context, suggestionID uint64) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Suggestion{}).
		Where("id = ?", suggestionID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	return res.RowsAffected, res.Error
}

func (s *SuggestionActionRepoImpl) GetViewCount(ctx context.Context, suggestionID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Suggestion{}).
		Where("id = ?", suggestionID).
		Pluck("view_count", &count).Error
	return count, err
}
