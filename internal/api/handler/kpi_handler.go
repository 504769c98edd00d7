package handler

import (
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/service"

	"github.com/gin-gonic/gin"
)

type KpiHandler struct {
	kpiSvc service.KpiService
}

func NewKpiHandler(kpiSvc service.KpiService) *KpiHandler {
	return &KpiHandler{kpiSvc: kpiSvc}
}

func (s *KpiHandler) GetSummary(c *gin.Context) {
	summary, err := s.kpiSvc.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
