package service

import (
	"PedGuard/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccidentRepo struct {
	rows     []*model.Accident
	lastCall string
	lastGte  string
	lastLt   string
	lastCode string
}

func (f *fakeAccidentRepo) FindAll(_ context.Context) ([]*model.Accident, error) {
	f.lastCall = "all"
	return f.rows, nil
}

func (f *fakeAccidentRepo) FindBySigunguCodeRange(_ context.Context, gte, lt string) ([]*model.Accident, error) {
	f.lastCall = "range"
	f.lastGte = gte
	f.lastLt = lt
	return f.rows, nil
}

func (f *fakeAccidentRepo) FindBySigunguCode(_ context.Context, code string) ([]*model.Accident, error) {
	f.lastCall = "exact"
	f.lastCode = code
	return f.rows, nil
}

func iptr(v int) *int { return &v }

func accidentRow(year, month int, accidents, casualties, fatalities int) *model.Accident {
	return &model.Accident{
		Year:          year,
		Month:         month,
		AccidentCount: iptr(accidents),
		CasualtyCount: iptr(casualties),
		FatalityCount: iptr(fatalities),
	}
}

func TestGetSummaryRegionDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		region   string
		wantCall string
		wantType string
		wantGte  string
		wantLt   string
		wantCode string
	}{
		{name: "nationwide", region: "", wantCall: "all", wantType: "NATION"},
		{name: "province prefix", region: "11", wantCall: "range", wantType: "SIDO_PREFIX2", wantGte: "1100000000", wantLt: "1200000000"},
		{name: "district prefix", region: "11010", wantCall: "range", wantType: "DISTRICT5", wantGte: "1101000000", wantLt: "1101100000"},
		{name: "exact sigungu", region: "1101053000", wantCall: "exact", wantType: "SIGUNGU10", wantCode: "1101053000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeAccidentRepo{}
			svc := NewAccidentService(repo)

			summary, err := svc.GetSummary(context.Background(), tt.region)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCall, repo.lastCall)
			assert.Equal(t, tt.region, summary.Region)
			assert.Equal(t, tt.wantType, summary.RegionType)
			assert.Equal(t, tt.wantGte, repo.lastGte)
			assert.Equal(t, tt.wantLt, repo.lastLt)
			assert.Equal(t, tt.wantCode, repo.lastCode)
		})
	}
}

func TestGetSummaryRejectsMalformedRegion(t *testing.T) {
	t.Parallel()

	svc := NewAccidentService(&fakeAccidentRepo{})
	_, err := svc.GetSummary(context.Background(), "110")
	assert.ErrorIs(t, err, ErrRegionCodeInvalid)
}

func TestGetSummaryAggregation(t *testing.T) {
	t.Parallel()

	repo := &fakeAccidentRepo{rows: []*model.Accident{
		accidentRow(2023, 1, 10, 12, 1),
		accidentRow(2023, 1, 5, 6, 0),
		accidentRow(2023, 2, 7, 8, 2),
		accidentRow(2022, 12, 3, 3, 0),
	}}
	svc := NewAccidentService(repo)

	summary, err := svc.GetSummary(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, summary.Yearly, 2)
	assert.Equal(t, 2022, summary.Yearly[0].Year)
	assert.Equal(t, int64(3), summary.Yearly[0].AccidentCount)
	assert.Equal(t, 2023, summary.Yearly[1].Year)
	assert.Equal(t, int64(22), summary.Yearly[1].AccidentCount)
	assert.Equal(t, int64(26), summary.Yearly[1].CasualtyCount)
	assert.Equal(t, int64(3), summary.Yearly[1].FatalityCount)

	require.Len(t, summary.Monthly, 3)
	assert.Equal(t, 2022, summary.Monthly[0].Year)
	assert.Equal(t, 12, summary.Monthly[0].Month)
	assert.Equal(t, 1, summary.Monthly[1].Month)
	assert.Equal(t, int64(15), summary.Monthly[1].AccidentCount)
	assert.Equal(t, 2, summary.Monthly[2].Month)

	// monthly totals must add back up to the yearly rollup
	var monthlySum int64
	for _, m := range summary.Monthly {
		if m.Year == 2023 {
			monthlySum += m.AccidentCount
		}
	}
	assert.Equal(t, summary.Yearly[1].AccidentCount, monthlySum)
}

func TestGetSummaryReadsAbsentCountsAsZero(t *testing.T) {
	t.Parallel()

	repo := &fakeAccidentRepo{rows: []*model.Accident{
		{Year: 2023, Month: 1, AccidentCount: iptr(4)},
	}}
	svc := NewAccidentService(repo)

	summary, err := svc.GetSummary(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, summary.Yearly, 1)
	assert.Equal(t, int64(4), summary.Yearly[0].AccidentCount)
	assert.Zero(t, summary.Yearly[0].CasualtyCount)
	assert.Zero(t, summary.Yearly[0].FatalityCount)
	assert.Zero(t, summary.Yearly[0].SeriousInjuryCount)
}

func TestGetSummaryEmptyRegionIsEmptyNotError(t *testing.T) {
	t.Parallel()

	svc := NewAccidentService(&fakeAccidentRepo{})
	summary, err := svc.GetSummary(context.Background(), "9901053000")
	require.NoError(t, err)
	assert.Empty(t, summary.Yearly)
	assert.Empty(t, summary.Monthly)
}
