package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/model"
	"PedGuard/internal/repository"
	"context"
	"sort"
	"strings"
)

type DistrictService interface {
	GetProvinces(ctx context.Context) ([]*dto.ProvinceDTO, error)
	GetCitiesByProvince(ctx context.Context, province string) ([]*dto.CityDTO, error)
	GetDistricts(ctx context.Context, codePrefix string) ([]*dto.DistrictDTO, error)
}

type districtServiceImpl struct {
	districtRepo repository.DistrictRepo
}

func NewDistrictService(districtRepo repository.DistrictRepo) DistrictService {
	return &districtServiceImpl{districtRepo: districtRepo}
}

type centroid struct {
	latSum float64
	lonSum float64
	n      int
}

func (c *centroid) add(lat, lon float64) {
	c.latSum += lat
	c.lonSum += lon
	c.n++
}

func (c *centroid) avg() (float64, float64) {
	return c.latSum / float64(c.n), c.lonSum / float64(c.n)
}

// GetProvinces averages every legal-dong centroid under each province name
// (the first token of the full district name).
func (s *districtServiceImpl) GetProvinces(ctx context.Context) ([]*dto.ProvinceDTO, error) {
	districts, err := s.districtRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	acc := make(map[string]*centroid)
	for _, d := range districts {
		tokens := strings.Fields(strings.TrimSpace(d.BjdName))
		if len(tokens) < 1 || d.CenterLat == nil || d.CenterLon == nil {
			continue
		}
		province := tokens[0]
		c, ok := acc[province]
		if !ok {
			c = &centroid{}
			acc[province] = c
		}
		c.add(*d.CenterLat, *d.CenterLon)
	}

	result := make([]*dto.ProvinceDTO, 0, len(acc))
	for province, c := range acc {
		lat, lon := c.avg()
		result = append(result, &dto.ProvinceDTO{Province: province, Lat: lat, Lon: lon})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Province < result[j].Province
	})
	return result, nil
}

// GetCitiesByProvince averages centroids per city (second name token) within
// one province. Rows without a centroid are skipped, matching merged
// districts in the source data.
func (s *districtServiceImpl) GetCitiesByProvince(ctx context.Context, province string) ([]*dto.CityDTO, error) {
	if province == "" {
		return nil, ErrParamInvalid
	}

	districts, err := s.districtRepo.FindByNamePrefix(ctx, province+" ")
	if err != nil {
		return nil, err
	}

	acc := make(map[string]*centroid)
	for _, d := range districts {
		tokens := strings.Fields(strings.TrimSpace(d.BjdName))
		if len(tokens) < 2 || tokens[0] != province {
			continue
		}
		if d.CenterLat == nil || d.CenterLon == nil {
			continue
		}
		city := tokens[1]
		c, ok := acc[city]
		if !ok {
			c = &centroid{}
			acc[city] = c
		}
		c.add(*d.CenterLat, *d.CenterLon)
	}

	result := make([]*dto.CityDTO, 0, len(acc))
	for city, c := range acc {
		lat, lon := c.avg()
		result = append(result, &dto.CityDTO{
			City: city,
			Lat:  lat,
			Lon:  lon,
			Key:  province + "|" + city,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].City < result[j].City
	})
	return result, nil
}

func (s *districtServiceImpl) GetDistricts(ctx context.Context, codePrefix string) ([]*dto.DistrictDTO, error) {
	var (
		districts []*model.District
		err       error
	)
	if codePrefix == "" {
		districts, err = s.districtRepo.FindAll(ctx)
	} else {
		if !allDigits(codePrefix) {
			return nil, ErrRegionCodeInvalid
		}
		districts, err = s.districtRepo.FindByCodePrefix(ctx, codePrefix)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DistrictDTO, 0, len(districts))
	for _, d := range districts {
		result = append(result, &dto.DistrictDTO{
			Code:      d.BjdCode,
			Name:      d.BjdName,
			CenterLat: d.CenterLat,
			CenterLon: d.CenterLon,
		})
	}
	return result, nil
}
