package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/model"
	"PedGuard/internal/repository"
	"context"
	"sort"
)

type AccidentService interface {
	GetSummary(ctx context.Context, region string) (*dto.AccidentSummaryDTO, error)
}

type accidentServiceImpl struct {
	accidentRepo repository.AccidentRepo
}

func NewAccidentService(accidentRepo repository.AccidentRepo) AccidentService {
	return &accidentServiceImpl{accidentRepo: accidentRepo}
}

// GetSummary classifies the region parameter, pulls the matching rows and
// rolls them up by year and by (year, month). An unknown but well-formed
// region simply yields empty rollups.
func (s *accidentServiceImpl) GetSummary(ctx context.Context, region string) (*dto.AccidentSummaryDTO, error) {
	filter, err := ClassifyRegion(region)
	if err != nil {
		return nil, err
	}

	var rows []*model.Accident
	switch filter.Tier {
	case TierNation:
		rows, err = s.accidentRepo.FindAll(ctx)
	case TierSidoPrefix2, TierDistrict5:
		rows, err = s.accidentRepo.FindBySigunguCodeRange(ctx, filter.RangeStart, filter.RangeEnd)
	case TierSigungu10:
		rows, err = s.accidentRepo.FindBySigunguCode(ctx, filter.Exact)
	}
	if err != nil {
		return nil, err
	}

	yearly, monthly := aggregate(rows)
	return &dto.AccidentSummaryDTO{
		Region:     region,
		RegionType: filter.Tier.String(),
		Yearly:     yearly,
		Monthly:    monthly,
	}, nil
}

type monthKey struct {
	year  int
	month int
}

// aggregate sums the six count columns in one pass, reading absent columns
// as zero, then emits both rollups in ascending key order so equal inputs
// always produce identical output.
func aggregate(rows []*model.Accident) ([]dto.YearlyAccidentDTO, []dto.MonthlyAccidentDTO) {
	yearTotals := make(map[int]*dto.YearlyAccidentDTO)
	monthTotals := make(map[monthKey]*dto.MonthlyAccidentDTO)

	for _, row := range rows {
		y, ok := yearTotals[row.Year]
		if !ok {
			y = &dto.YearlyAccidentDTO{Year: row.Year}
			yearTotals[row.Year] = y
		}
		y.AccidentCount += nz(row.AccidentCount)
		y.CasualtyCount += nz(row.CasualtyCount)
		y.FatalityCount += nz(row.FatalityCount)
		y.SeriousInjuryCount += nz(row.SeriousInjuryCount)
		y.MinorInjuryCount += nz(row.MinorInjuryCount)
		y.ReportedInjuryCount += nz(row.ReportedInjuryCount)

		mk := monthKey{year: row.Year, month: row.Month}
		m, ok := monthTotals[mk]
		if !ok {
			m = &dto.MonthlyAccidentDTO{Year: row.Year, Month: row.Month}
			monthTotals[mk] = m
		}
		m.AccidentCount += nz(row.AccidentCount)
		m.CasualtyCount += nz(row.CasualtyCount)
		m.FatalityCount += nz(row.FatalityCount)
		m.SeriousInjuryCount += nz(row.SeriousInjuryCount)
		m.MinorInjuryCount += nz(row.MinorInjuryCount)
		m.ReportedInjuryCount += nz(row.ReportedInjuryCount)
	}

	yearly := make([]dto.YearlyAccidentDTO, 0, len(yearTotals))
	for _, y := range yearTotals {
		yearly = append(yearly, *y)
	}
	sort.Slice(yearly, func(i, j int) bool {
		return yearly[i].Year < yearly[j].Year
	})

	monthly := make([]dto.MonthlyAccidentDTO, 0, len(monthTotals))
	for _, m := range monthTotals {
		monthly = append(monthly, *m)
	}
	sort.Slice(monthly, func(i, j int) bool {
		if monthly[i].Year != monthly[j].Year {
			return monthly[i].Year < monthly[j].Year
		}
		return monthly[i].Month < monthly[j].Month
	})

	return yearly, monthly
}

func nz(v *int) int64 {
	if v == nil {
		return 0
	}
	return int64(*v)
}
