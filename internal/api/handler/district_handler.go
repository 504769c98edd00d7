package handler

import (
	"PedGuard/internal/pkg/response"
	"PedGuard/internal/service"

	"github.com/gin-gonic/gin"
)

type DistrictHandler struct {
	districtSvc service.DistrictService
}

func NewDistrictHandler(districtSvc service.DistrictService) *DistrictHandler {
	return &DistrictHandler{districtSvc: districtSvc}
}

func (s *DistrictHandler) GetProvinces(c *gin.Context) {
	provinces, err := s.districtSvc.GetProvinces(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, provinces)
}

func (s *DistrictHandler) GetCities(c *gin.Context) {
	province := c.Query("province")
	cities, err := s.districtSvc.GetCitiesByProvince(c.Request.Context(), province)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cities)
}

func (s *DistrictHandler) GetDistricts(c *gin.Context) {
	codePrefix := c.Query("code")
	districts, err := s.districtSvc.GetDistricts(c.Request.Context(), codePrefix)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, districts)
}
