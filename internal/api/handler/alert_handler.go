package handler

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/pkg/util"
	"PedGuard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertSvc service.AlertService
}

func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

func (s *AlertHandler) Create(c *gin.Context) {
	var req dto.AlertCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.alertSvc.CreateAlert(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	alerts, err := s.alertSvc.GetAlerts(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, alerts)
}

func (s *AlertHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	alertID := c.Param("id")
	if alertID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.alertSvc.MarkRead(c.Request.Context(), userID, alertID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.alertSvc.MarkAllRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.alertSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}
