package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abbed/internal/app"
	"abbed/internal/domain"
)

func newDashboard(entries []domain.WeightEntry, profile *domain.Profile) *app.DashboardService {
	wr := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64, _ domain.EntryFilter) ([]domain.WeightEntry, error) {
			return entries, nil
		},
	}
	pr := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.Profile, error) {
			if profile == nil {
				return nil, domain.ErrNotFound
			}
			return profile, nil
		},
	}
	svc := app.NewDashboardService(wr, pr)
	svc.SetClock(func() time.Time { return fixedNow }, time.UTC)
	return svc
}

func TestSummary_NoData(t *testing.T) {
	sum, err := newDashboard(nil, nil).Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Streak)
	assert.Equal(t, domain.StreakMessage(0), sum.StreakMessage)
	assert.Nil(t, sum.Latest)
	assert.Nil(t, sum.DaysSinceLast)
	assert.Nil(t, sum.BMI)
	assert.Nil(t, sum.Progress)
	assert.Equal(t, int64(1), sum.Profile.UserID)
}

func TestSummary_FullProfile(t *testing.T) {
	// unsorted on purpose
	entries := []domain.WeightEntry{
		{ID: 2, Weight: 91, Date: fixedNow.AddDate(0, 0, -1)},
		{ID: 3, Weight: 90, Date: fixedNow},
		{ID: 1, Weight: 92, Date: fixedNow.AddDate(0, 0, -2)},
		{ID: 4, Weight: 95, Date: fixedNow.AddDate(0, 0, -9)},
	}
	profile := &domain.Profile{UserID: 1, HeightCm: ptr(175), StartWeight: ptr(100), GoalWeight: ptr(80)}

	sum, err := newDashboard(entries, profile).Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.EntryCount)
	assert.Equal(t, 3, sum.Streak)
	require.NotNil(t, sum.Latest)
	assert.Equal(t, int64(3), sum.Latest.ID)
	require.NotNil(t, sum.DaysSinceLast)
	assert.Equal(t, 0, *sum.DaysSinceLast)

	require.NotNil(t, sum.BMI)
	assert.InDelta(t, 29.4, sum.BMI.Value, 1e-9)
	assert.Equal(t, domain.BMIOverweight, sum.BMI.Category)

	require.NotNil(t, sum.Progress)
	assert.Equal(t, 50, sum.Progress.Percent)
	assert.InDelta(t, 10.0, sum.Progress.TotalLoss, 1e-9)
	assert.InDelta(t, 10.0, sum.Progress.Remaining, 1e-9)
	assert.False(t, sum.Progress.GoalReached)
}

func TestSummary_MissingProfileScalars(t *testing.T) {
	entries := []domain.WeightEntry{{ID: 1, Weight: 70, Date: fixedNow.AddDate(0, 0, -4)}}
	profile := &domain.Profile{UserID: 1, GoalWeight: ptr(65)}

	sum, err := newDashboard(entries, profile).Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Streak)
	require.NotNil(t, sum.DaysSinceLast)
	assert.Equal(t, 4, *sum.DaysSinceLast)
	assert.Nil(t, sum.BMI, "no height")
	assert.Nil(t, sum.Progress, "no start weight")
}

func TestSummary_ProfileError(t *testing.T) {
	pr := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.Profile, error) {
			return nil, errors.New("db down")
		},
	}
	svc := app.NewDashboardService(&mockWeightRepo{}, pr)
	_, err := svc.Summary(context.Background(), 1)
	assert.Error(t, err)
}
