package handler

import (
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type InvestmentHandler struct {
	investmentSvc service.InvestmentService
}

func NewInvestmentHandler(investmentSvc service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentSvc: investmentSvc}
}

func (s *InvestmentHandler) ListPlans(c *gin.Context) {
	plans, err := s.investmentSvc.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, plans)
}

func (s *InvestmentHandler) GetPlanItems(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || planID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	items, err := s.investmentSvc.GetPlanItems(c.Request.Context(), planID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
