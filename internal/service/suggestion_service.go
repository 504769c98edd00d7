package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/model"
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/es"
	"PedGuard/internal/pkg/mongo"
	"PedGuard/internal/pkg/redis"
	"PedGuard/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const statsCacheExpiration = 5 * time.Minute

// PriorityScore ranks a suggestion from its engagement counters. Counters
// are invariant-protected at >= 0, so a negative input means the caller
// corrupted state and we fail fast rather than rank garbage.
func PriorityScore(likes, comments, views int64) int {
	if likes < 0 || comments < 0 || views < 0 {
		panic(fmt.Sprintf("negative counter: likes=%d comments=%d views=%d", likes, comments, views))
	}
	return int(likes*3 + comments*2 + views/10)
}

// statusTransitions is the forward-only lifecycle. REJECTED and COMPLETED
// are terminal.
var statusTransitions = map[model.SuggestionStatus][]model.SuggestionStatus{
	model.StatusPending:   {model.StatusReviewing, model.StatusApproved, model.StatusRejected},
	model.StatusReviewing: {model.StatusApproved, model.StatusRejected},
	model.StatusApproved:  {model.StatusCompleted},
}

func CanTransition(from, to model.SuggestionStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type SuggestionService interface {
	Create(ctx context.Context, userID uint64, req *dto.SuggestionCreateDTO) (uint64, error)
	Find(ctx context.Context, q *dto.SuggestionListQuery) (*dto.Page[*dto.SuggestionDTO], error)
	GetDetail(ctx context.Context, viewerID, id uint64) (*dto.SuggestionDetailDTO, error)
	UpdateStatus(ctx context.Context, id uint64, req *dto.StatusUpdateDTO) error
	GetStatistics(ctx context.Context) (*dto.SuggestionStatsDTO, error)
	SyncSuggestionCounts(ctx context.Context, id uint64, likes, comments, views int64) error
}

type suggestionServiceImpl struct {
	suggestionRepo repository.SuggestionRepo
	actionRepo     repository.SuggestionActionRepo
	esRepo         es.SuggestionRepo
	alertRepo      mongo.AlertRepo
}

// NewSuggestionService wires the listing engine. esRepo is nil when the
// deployment runs without a search cluster; text search then degrades to
// store-side LIKE matching.
func NewSuggestionService(
	suggestionRepo repository.SuggestionRepo,
	actionRepo repository.SuggestionActionRepo,
	esRepo es.SuggestionRepo,
	alertRepo mongo.AlertRepo,
) SuggestionService {
	return &suggestionServiceImpl{
		suggestionRepo: suggestionRepo,
		actionRepo:     actionRepo,
		esRepo:         esRepo,
		alertRepo:      alertRepo,
	}
}

func (s *suggestionServiceImpl) Create(ctx context.Context, userID uint64, req *dto.SuggestionCreateDTO) (uint64, error) {
	suggestionType := model.SuggestionType(req.SuggestionType)
	if !suggestionType.Valid() {
		return 0, ErrParamInvalid
	}

	suggestion := &model.Suggestion{
		UserID:         userID,
		Title:          req.Title,
		Content:        req.Content,
		LocationLat:    req.LocationLat,
		LocationLon:    req.LocationLon,
		Address:        req.Address,
		Sido:           req.Sido,
		Sigungu:        req.Sigungu,
		SuggestionType: suggestionType,
		Status:         model.StatusPending,
	}
	if err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		return 0, err
	}

	s.indexSuggestion(ctx, suggestion)
	_ = redis.DeleteKey(ctx, consts.SuggestionStatsKey)
	return suggestion.ID, nil
}

// Find returns one page of the filtered listing. Page is clamped to >= 1,
// page size to [1, 50]; the total always counts the full filtered set.
func (s *suggestionServiceImpl) Find(ctx context.Context, q *dto.SuggestionListQuery) (*dto.Page[*dto.SuggestionDTO], error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}

	if q.Status != "" && !model.SuggestionStatus(q.Status).Valid() {
		return nil, ErrParamInvalid
	}
	if q.Type != "" && !model.SuggestionType(q.Type).Valid() {
		return nil, ErrParamInvalid
	}

	offset := (page - 1) * pageSize

	var (
		suggestions []*model.Suggestion
		total       int64
		err         error
	)
	if q.Search != "" && s.esRepo != nil {
		suggestions, total, err = s.findViaSearchIndex(ctx, q, offset, pageSize)
	} else {
		suggestions, total, err = s.suggestionRepo.Search(ctx, repository.SuggestionQuery{
			Status: model.SuggestionStatus(q.Status),
			Type:   model.SuggestionType(q.Type),
			Region: q.Region,
			Search: q.Search,
			Limit:  pageSize,
			Offset: offset,
		})
	}
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SuggestionDTO, 0, len(suggestions))
	for _, suggestion := range suggestions {
		items = append(items, toSuggestionDTO(suggestion))
	}
	return dto.NewPage(items, page, pageSize, total), nil
}

// findViaSearchIndex resolves the page through Elasticsearch and re-reads
// the rows from the store, preserving the index ordering.
func (s *suggestionServiceImpl) findViaSearchIndex(ctx context.Context, q *dto.SuggestionListQuery, offset, pageSize int) ([]*model.Suggestion, int64, error) {
	ids, total, err := s.esRepo.SearchIDs(ctx, es.SearchQuery{
		Status: q.Status,
		Type:   q.Type,
		Region: q.Region,
		Search: q.Search,
		From:   offset,
		Size:   pageSize,
	})
	if err != nil {
		log.WarnContext(ctx, "search index unavailable, falling back to store", "err", err)
		return s.suggestionRepo.Search(ctx, repository.SuggestionQuery{
			Status: model.SuggestionStatus(q.Status),
			Type:   model.SuggestionType(q.Type),
			Region: q.Region,
			Search: q.Search,
			Limit:  pageSize,
			Offset: offset,
		})
	}
	if len(ids) == 0 {
		return nil, total, nil
	}

	rows, err := s.suggestionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uint64]*model.Suggestion, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]*model.Suggestion, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, total, nil
}

func (s *suggestionServiceImpl) GetDetail(ctx context.Context, viewerID, id uint64) (*dto.SuggestionDetailDTO, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}

	isLiked := false
	if viewerID > 0 {
		isLiked, _ = s.actionRepo.LikeExists(ctx, id, viewerID)
	}

	detail := &dto.SuggestionDetailDTO{
		SuggestionDTO: *toSuggestionDTO(suggestion),
		Content:       suggestion.Content,
		AdminResponse: suggestion.AdminResponse,
		UpdatedAt:     suggestion.UpdatedAt.Format(time.RFC3339),
		IsLiked:       isLiked,
	}
	return detail, nil
}

func (s *suggestionServiceImpl) UpdateStatus(ctx context.Context, id uint64, req *dto.StatusUpdateDTO) error {
	target := model.SuggestionStatus(req.Status)
	if !target.Valid() {
		return ErrParamInvalid
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSuggestionNotFound
		}
		return err
	}
	if !CanTransition(suggestion.Status, target) {
		return ErrStatusTransition
	}

	if err = s.suggestionRepo.UpdateStatus(ctx, id, target, req.AdminResponse); err != nil {
		return err
	}

	suggestion.Status = target
	suggestion.AdminResponse = req.AdminResponse
	s.indexSuggestion(ctx, suggestion)
	s.notifyStatusChange(ctx, suggestion, target)
	_ = redis.DeleteKey(ctx, consts.SuggestionStatsKey)
	return nil
}

func (s *suggestionServiceImpl) GetStatistics(ctx context.Context) (*dto.SuggestionStatsDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.SuggestionStatsKey); err == nil && cached != "" {
		var stats dto.SuggestionStatsDTO
		if err = json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	counts, err := s.suggestionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.SuggestionStatsDTO{}
	for _, c := range counts {
		stats.TotalCount += c.Count
		switch c.Status {
		case model.StatusPending:
			stats.PendingCount = c.Count
		case model.StatusReviewing:
			stats.ReviewingCount = c.Count
		case model.StatusApproved:
			stats.ApprovedCount = c.Count
		case model.StatusRejected:
			stats.RejectedCount = c.Count
		case model.StatusCompleted:
			stats.CompletedCount = c.Count
		}
	}

	if raw, err := json.Marshal(stats); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.SuggestionStatsKey, string(raw), statsCacheExpiration)
	}
	return stats, nil
}

// SyncSuggestionCounts writes reconciled counters plus the derived priority
// back to the row; the nightly metric job is the only caller.
func (s *suggestionServiceImpl) SyncSuggestionCounts(ctx context.Context, id uint64, likes, comments, views int64) error {
	score := PriorityScore(likes, comments, views)
	if err := s.suggestionRepo.UpdateCounts(ctx, id, likes, comments, score); err != nil {
		return err
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, id)
	if err == nil {
		s.indexSuggestion(ctx, suggestion)
	}
	return nil
}

func (s *suggestionServiceImpl) indexSuggestion(ctx context.Context, suggestion *model.Suggestion) {
	if s.esRepo == nil {
		return
	}
	doc := &es.SuggestionES{}
	if err := copier.Copy(doc, suggestion); err != nil {
		log.ErrorContext(ctx, "map suggestion to search doc error", "id", suggestion.ID, "err", err)
		return
	}
	doc.SuggestionType = string(suggestion.SuggestionType)
	doc.Status = string(suggestion.Status)
	if err := s.esRepo.IndexSuggestion(ctx, doc); err != nil {
		log.ErrorContext(ctx, "index suggestion error", "id", suggestion.ID, "err", err)
	}
}

func (s *suggestionServiceImpl) notifyStatusChange(ctx context.Context, suggestion *model.Suggestion, status model.SuggestionStatus) {
	if s.alertRepo == nil {
		return
	}
	alert := &mongo.AlertModel{
		ReceiverID: suggestion.UserID,
		AlertType:  "SUGGESTION_UPDATE",
		Title:      suggestion.Title,
		Message:    "suggestion status changed to " + string(status),
		Severity:   "LOW",
		Sido:       suggestion.Sido,
		Sigungu:    suggestion.Sigungu,
		TargetID:   suggestion.ID,
		CreatedAt:  time.Now(),
	}
	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		log.ErrorContext(ctx, "create status alert error", "id", suggestion.ID, "err", err)
	}
}

func toSuggestionDTO(suggestion *model.Suggestion) *dto.SuggestionDTO {
	return &dto.SuggestionDTO{
		ID:             suggestion.ID,
		Title:          suggestion.Title,
		Address:        suggestion.Address,
		Sigungu:        suggestion.Sigungu,
		SuggestionType: string(suggestion.SuggestionType),
		Status:         string(suggestion.Status),
		ViewCount:      int64(suggestion.ViewCount),
		LikeCount:      int64(suggestion.LikeCount),
		CommentCount:   int64(suggestion.CommentCount),
		PriorityScore:  PriorityScore(int64(suggestion.LikeCount), int64(suggestion.CommentCount), int64(suggestion.ViewCount)),
		CreatedAt:      suggestion.CreatedAt.Format(time.RFC3339),
		UserID:         suggestion.UserID,
		UserName:       suggestion.User.Name,
		LocationLat:    suggestion.LocationLat,
		LocationLon:    suggestion.LocationLon,
	}
}
