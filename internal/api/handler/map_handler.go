package handler

import (
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/service"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	mapSvc service.MapService
}

func NewMapHandler(mapSvc service.MapService) *MapHandler {
	return &MapHandler{mapSvc: mapSvc}
}

func (s *MapHandler) GetCrosswalks(c *gin.Context) {
	rows, err := s.mapSvc.GetCrosswalks(c.Request.Context(), c.Query("bounds"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *MapHandler) GetSignals(c *gin.Context) {
	rows, err := s.mapSvc.GetSignals(c.Request.Context(), c.Query("bounds"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *MapHandler) GetHotspots(c *gin.Context) {
	rows, err := s.mapSvc.GetHotspots(c.Request.Context(), c.Query("bounds"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}
