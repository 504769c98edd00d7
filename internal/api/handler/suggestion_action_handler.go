package handler

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/pkg/util"
	"PedGuard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SuggestionActionHandler struct {
	actionSvc service.SuggestionActionService
}

func NewSuggestionActionHandler(actionSvc service.SuggestionActionService) *SuggestionActionHandler {
	return &SuggestionActionHandler{actionSvc: actionSvc}
}

func (s *SuggestionActionHandler) ToggleLike(c *gin.Context) {
	suggestionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || suggestionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	result, err := s.actionSvc.ToggleLike(c.Request.Context(), suggestionID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *SuggestionActionHandler) GetComments(c *gin.Context) {
	suggestionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || suggestionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.actionSvc.GetComments(c.Request.Context(), suggestionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *SuggestionActionHandler) AddComment(c *gin.Context) {
	suggestionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || suggestionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.CommentCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.AddComment(c.Request.Context(), suggestionID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *SuggestionActionHandler) DeleteComment(c *gin.Context) {
	suggestionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || suggestionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	if err = s.actionSvc.DeleteComment(c.Request.Context(), userID, roles, suggestionID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
