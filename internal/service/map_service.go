package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/repository"
	"context"
	"strconv"
	"strings"
)

type MapService interface {
	GetCrosswalks(ctx context.Context, bounds string) ([]*dto.CrosswalkDTO, error)
	GetSignals(ctx context.Context, bounds string) ([]*dto.SignalDTO, error)
	GetHotspots(ctx context.Context, bounds string) ([]*dto.HotspotDTO, error)
}

type mapServiceImpl struct {
	crosswalkRepo repository.CrosswalkRepo
	signalRepo    repository.SignalRepo
	hotspotRepo   repository.HotspotRepo
}

func NewMapService(
	crosswalkRepo repository.CrosswalkRepo,
	signalRepo repository.SignalRepo,
	hotspotRepo repository.HotspotRepo,
) MapService {
	return &mapServiceImpl{
		crosswalkRepo: crosswalkRepo,
		signalRepo:    signalRepo,
		hotspotRepo:   hotspotRepo,
	}
}

// ParseBounds reads a "minLat,minLon,maxLat,maxLon" viewport string.
func ParseBounds(raw string) (repository.Bounds, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return repository.Bounds{}, ErrBoundsInvalid
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return repository.Bounds{}, ErrBoundsInvalid
		}
		vals[i] = v
	}
	b := repository.Bounds{MinLat: vals[0], MinLon: vals[1], MaxLat: vals[2], MaxLon: vals[3]}
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return repository.Bounds{}, ErrBoundsInvalid
	}
	return b, nil
}

func (s *mapServiceImpl) GetCrosswalks(ctx context.Context, bounds string) ([]*dto.CrosswalkDTO, error) {
	b, err := ParseBounds(bounds)
	if err != nil {
		return nil, err
	}
	rows, err := s.crosswalkRepo.FindInBounds(ctx, b)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CrosswalkDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.CrosswalkDTO{
			ID:              row.CwUID,
			Address:         row.Address,
			Lat:             row.Lat,
			Lon:             row.Lon,
			HasSignal:       row.HasSignal,
			HasButton:       row.HasButton,
			HasSoundSignal:  row.HasSoundSignal,
			HasBrailleBlock: row.HasBrailleBlock,
		})
	}
	return result, nil
}

func (s *mapServiceImpl) GetSignals(ctx context.Context, bounds string) ([]*dto.SignalDTO, error) {
	b, err := ParseBounds(bounds)
	if err != nil {
		return nil, err
	}
	rows, err := s.signalRepo.FindInBounds(ctx, b)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.SignalDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.SignalDTO{
			ID:             row.SgUID,
			Address:        row.Address,
			Lat:            row.Lat,
			Lon:            row.Lon,
			SignalType:     row.SignalType,
			HasPedButton:   row.HasPedButton,
			HasTimeShow:    row.HasTimeShow,
			HasSoundSignal: row.HasSoundSignal,
		})
	}
	return result, nil
}

func (s *mapServiceImpl) GetHotspots(ctx context.Context, bounds string) ([]*dto.HotspotDTO, error) {
	b, err := ParseBounds(bounds)
	if err != nil {
		return nil, err
	}
	rows, err := s.hotspotRepo.FindInBounds(ctx, b)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.HotspotDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.HotspotDTO{
			ID:            row.AccidentID,
			Year:          row.Year,
			Detail:        row.Detail,
			Lat:           row.AccidentLat,
			Lon:           row.AccidentLon,
			AccidentCount: row.AccidentCount,
			CasualtyCount: row.CasualtyCount,
			FatalityCount: row.FatalityCount,
		})
	}
	return result, nil
}
