package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abbed/internal/app"
	"abbed/internal/domain"
)

func newChartsService(repo domain.WeightRepository) *app.ChartsService {
	svc := app.NewChartsService(repo)
	svc.SetClock(func() time.Time { return fixedNow }, time.UTC)
	return svc
}

func TestGetDaily_BadUnit(t *testing.T) {
	svc := newChartsService(&mockWeightRepo{})
	_, err := svc.GetDaily(context.Background(), 1, 7, "stones")
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestGetDaily_Window(t *testing.T) {
	var got domain.EntryFilter
	repo := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64, f domain.EntryFilter) ([]domain.WeightEntry, error) {
			got = f
			return nil, nil
		},
	}
	svc := newChartsService(repo)

	points, err := svc.GetDaily(context.Background(), 1, 3, "kg")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "2026-03-08", points[0].Day)
	assert.Equal(t, "2026-03-10", points[2].Day)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), got.To)
	for _, p := range points {
		assert.Nil(t, p.Weight)
	}
}

func TestGetDaily_LatestEntryPerDay(t *testing.T) {
	repo := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64, _ domain.EntryFilter) ([]domain.WeightEntry, error) {
			return []domain.WeightEntry{
				{ID: 1, Weight: 81, Date: time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)},
				{ID: 2, Weight: 80, Date: time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)},
				{ID: 3, Weight: 82, Date: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := newChartsService(repo)

	points, err := svc.GetDaily(context.Background(), 1, 3, "kg")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Nil(t, points[0].Weight)
	require.NotNil(t, points[1].Weight)
	assert.Equal(t, 82.0, points[1].Weight.Value)
	require.NotNil(t, points[2].Weight)
	assert.Equal(t, 80.0, points[2].Weight.Value)
}

func TestGetDaily_ConvertUnit(t *testing.T) {
	repo := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64, _ domain.EntryFilter) ([]domain.WeightEntry, error) {
			return []domain.WeightEntry{{ID: 1, Weight: 100, Date: fixedNow}}, nil
		},
	}
	svc := newChartsService(repo)

	points, err := svc.GetDaily(context.Background(), 1, 1, "lb")
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.NotNil(t, points[0].Weight)
	assert.InDelta(t, 220.46, points[0].Weight.Value, 0.01)
	assert.Equal(t, "lb", points[0].Weight.Unit)
}

func TestGetDaily_ClampsDays(t *testing.T) {
	svc := newChartsService(&mockWeightRepo{})

	points, err := svc.GetDaily(context.Background(), 1, 500, "kg")
	require.NoError(t, err)
	assert.Len(t, points, app.MaxChartDays)

	points, err = svc.GetDaily(context.Background(), 1, 0, "kg")
	require.NoError(t, err)
	assert.Len(t, points, app.DefaultChartDays)
}
