package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKpiRepo struct {
	raw string
	err error
}

func (f *fakeKpiRepo) FetchSummaryJSON(_ context.Context) (string, error) {
	return f.raw, f.err
}

func TestKpiSummaryPassesValidJSONThrough(t *testing.T) {
	t.Parallel()

	svc := NewKpiService(&fakeKpiRepo{raw: `{"accidents":{"total":12}}`})
	raw, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"accidents":{"total":12}}`, string(raw))
}

func TestKpiSummaryEmptyViewYieldsEmptyObject(t *testing.T) {
	t.Parallel()

	svc := NewKpiService(&fakeKpiRepo{raw: ""})
	raw, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestKpiSummaryRejectsBrokenJSON(t *testing.T) {
	t.Parallel()

	svc := NewKpiService(&fakeKpiRepo{raw: `{"accidents":`})
	_, err := svc.GetSummary(context.Background())
	assert.ErrorIs(t, err, UnExpectedError)
}
