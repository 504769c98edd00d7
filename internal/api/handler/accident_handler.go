package handler

import (
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/service"

	"github.com/gin-gonic/gin"
)

type AccidentHandler struct {
	accidentSvc service.AccidentService
}

func NewAccidentHandler(accidentSvc service.AccidentService) *AccidentHandler {
	return &AccidentHandler{accidentSvc: accidentSvc}
}

// GetSummary rolls accident rows up for the requested region; region may be
// empty (nationwide), a 2-digit province prefix, a 5-digit district prefix
// or a full 10-digit code.
func (s *AccidentHandler) GetSummary(c *gin.Context) {
	region := c.Query("region")
	summary, err := s.accidentSvc.GetSummary(c.Request.Context(), region)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
