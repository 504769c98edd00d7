package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/model"
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/redis"
	"PedGuard/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const counterCacheExpiration = 7 * 24 * time.Hour

type SuggestionActionService interface {
	ToggleLike(ctx context.Context, suggestionID, userID uint64) (*dto.ToggleLikeDTO, error)
	RecordView(ctx context.Context, suggestionID uint64) error
	AddComment(ctx context.Context, suggestionID, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, actorID uint64, roles []string, suggestionID, commentID uint64) error
	GetComments(ctx context.Context, suggestionID uint64) ([]*dto.CommentDTO, error)
	GetLikeCount(ctx context.Context, suggestionID uint64) (int64, error)
	GetCommentCount(ctx context.Context, suggestionID uint64) (int64, error)
	GetViewCount(ctx context.Context, suggestionID uint64) (int64, error)
}

type suggestionActionServiceImpl struct {
	actionRepo     repository.SuggestionActionRepo
	suggestionRepo repository.SuggestionRepo
	userRepo       repository.UserRepo
}

func NewSuggestionActionService(
	actionRepo repository.SuggestionActionRepo,
	suggestionRepo repository.SuggestionRepo,
	userRepo repository.UserRepo,
) SuggestionActionService {
	return &suggestionActionServiceImpl{
		actionRepo:     actionRepo,
		suggestionRepo: suggestionRepo,
		userRepo:       userRepo,
	}
}

// ToggleLike flips the (suggestion, user) like row and reports the new
// state. The composite primary key arbitrates concurrent toggles: the
// insert that loses surfaces as a duplicate-key error and maps to a
// conflict instead of double-counting.
func (s *suggestionActionServiceImpl) ToggleLike(ctx context.Context, suggestionID, userID uint64) (*dto.ToggleLikeDTO, error) {
	if err := s.checkSuggestion(ctx, suggestionID); err != nil {
		return nil, err
	}

	exists, err := s.actionRepo.LikeExists(ctx, suggestionID, userID)
	if err != nil {
		return nil, err
	}

	liked := false
	if exists {
		if _, err = s.actionRepo.RemoveLike(ctx, suggestionID, userID); err != nil {
			return nil, err
		}
	} else {
		if err = s.actionRepo.AddLike(ctx, suggestionID, userID); err != nil {
			if repository.IsDuplicateKey(err) {
				return nil, ErrActionDuplicate
			}
			return nil, err
		}
		liked = true
	}

	s.markDirty(ctx, suggestionID, consts.SuggestionLikeKey)

	count, err := s.actionRepo.CountLikes(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleLikeDTO{Liked: liked, LikeCount: count}, nil
}

// RecordView counts every hit; repeat views by the same user are counted by
// design.
func (s *suggestionActionServiceImpl) RecordView(ctx context.Context, suggestionID uint64) error {
	rows, err := s.actionRepo.IncrementView(ctx, suggestionID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSuggestionNotFound
	}
	s.markDirty(ctx, suggestionID, consts.SuggestionViewKey)
	return nil
}

func (s *suggestionActionServiceImpl) AddComment(ctx context.Context, suggestionID, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if err := s.checkSuggestion(ctx, suggestionID); err != nil {
		return nil, err
	}

	if req.ParentID != 0 {
		parent, err := s.actionRepo.GetComment(ctx, req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}
		if parent.SuggestionID != suggestionID {
			return nil, ErrCommentNotFound
		}
		// one level of nesting only
		if parent.ParentID != 0 {
			return nil, ErrCommentDepth
		}
	}

	comment := &model.SuggestionComment{
		SuggestionID: suggestionID,
		UserID:       userID,
		Content:      req.Content,
		ParentID:     req.ParentID,
	}
	if err := s.actionRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	s.markDirty(ctx, suggestionID, consts.SuggestionCommentKey)

	userName := ""
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		userName = user.Name
	}
	return toCommentDTO(comment, userName), nil
}

// DeleteComment removes a comment and its direct replies. Only the comment
// owner or an admin may delete.
func (s *suggestionActionServiceImpl) DeleteComment(ctx context.Context, actorID uint64, roles []string, suggestionID, commentID uint64) error {
	comment, err := s.actionRepo.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.SuggestionID != suggestionID {
		return ErrCommentNotFound
	}
	if !canModify(actorID, comment.UserID, roles) {
		return UnauthorizedError
	}

	if _, err = s.actionRepo.DeleteCommentTree(ctx, suggestionID, commentID); err != nil {
		return err
	}
	s.markDirty(ctx, suggestionID, consts.SuggestionCommentKey)
	return nil
}

func (s *suggestionActionServiceImpl) GetComments(ctx context.Context, suggestionID uint64) ([]*dto.CommentDTO, error) {
	if err := s.checkSuggestion(ctx, suggestionID); err != nil {
		return nil, err
	}

	comments, err := s.actionRepo.ListComments(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	names := make(map[uint64]string)
	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		name, ok := names[comment.UserID]
		if !ok {
			if user, err := s.userRepo.GetByID(ctx, comment.UserID); err == nil {
				name = user.Name
			}
			names[comment.UserID] = name
		}
		result = append(result, toCommentDTO(comment, name))
	}
	return result, nil
}

func (s *suggestionActionServiceImpl) GetLikeCount(ctx context.Context, suggestionID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.SuggestionLikeKey, suggestionID, func() (int64, error) {
		return s.actionRepo.CountLikes(ctx, suggestionID)
	})
}

func (s *suggestionActionServiceImpl) GetCommentCount(ctx context.Context, suggestionID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.SuggestionCommentKey, suggestionID, func() (int64, error) {
		return s.actionRepo.CountComments(ctx, suggestionID)
	})
}

func (s *suggestionActionServiceImpl) GetViewCount(ctx context.Context, suggestionID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.SuggestionViewKey, suggestionID, func() (int64, error) {
		return s.actionRepo.GetViewCount(ctx, suggestionID)
	})
}

func (s *suggestionActionServiceImpl) cachedCount(ctx context.Context, prefix string, suggestionID uint64, load func() (int64, error)) (int64, error) {
	key := prefix + strconv.FormatUint(suggestionID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := load()
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, counterCacheExpiration)
	return realCount, nil
}

func (s *suggestionActionServiceImpl) checkSuggestion(ctx context.Context, suggestionID uint64) error {
	_, err := s.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSuggestionNotFound
		}
		return err
	}
	return nil
}

// markDirty queues the suggestion for the nightly counter reconciliation and
// drops the stale cached counter.
func (s *suggestionActionServiceImpl) markDirty(ctx context.Context, suggestionID uint64, cachePrefix string) {
	idStr := strconv.FormatUint(suggestionID, 10)
	if err := redis.SAdd(ctx, consts.SuggestionDirtyKey, idStr); err != nil {
		log.WarnContext(ctx, "mark suggestion dirty error", "id", suggestionID, "err", err)
	}
	_ = redis.DeleteKey(ctx, cachePrefix+idStr)
}

func canModify(actorID, ownerID uint64, roles []string) bool {
	if actorID == ownerID {
		return true
	}
	for _, role := range roles {
		if role == consts.RoleAdmin {
			return true
		}
	}
	return false
}

func toCommentDTO(comment *model.SuggestionComment, userName string) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:           comment.ID,
		SuggestionID: comment.SuggestionID,
		Content:      comment.Content,
		ParentID:     comment.ParentID,
		CreatedAt:    comment.CreatedAt.Format(time.RFC3339),
		UserID:       comment.UserID,
		UserName:     userName,
	}
}
