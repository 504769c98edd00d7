package handler

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/pkg/util"
	"PedGuard/internal/service"
	log "log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestionSvc service.SuggestionService
	actionSvc     service.SuggestionActionService
}

func NewSuggestionHandler(
	suggestionSvc service.SuggestionService,
	actionSvc service.SuggestionActionService,
) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionSvc: suggestionSvc,
		actionSvc:     actionSvc,
	}
}

func (s *SuggestionHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.SuggestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.suggestionSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

func (s *SuggestionHandler) List(c *gin.Context) {
	var q dto.SuggestionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	page, err := s.suggestionSvc.Find(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GetDetail serves the full suggestion and records the view hit; every hit
// counts, by design.
func (s *SuggestionHandler) GetDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	ctx := c.Request.Context()
	detail, err := s.suggestionSvc.GetDetail(ctx, viewerID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.actionSvc.RecordView(ctx, id); err != nil {
		log.WarnContext(ctx, "record view error", "id", id, "err", err)
	}
	response.Success(c, detail)
}

func (s *SuggestionHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.StatusUpdateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.suggestionSvc.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SuggestionHandler) GetStatistics(c *gin.Context) {
	stats, err := s.suggestionSvc.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
