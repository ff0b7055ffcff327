package app

import (
	"context"
	"errors"
	"time"

	"abbed/internal/domain"
)

// DashboardService assembles the derived metrics shown on the dashboard from
// a fresh snapshot of the user's entries and profile.
type DashboardService struct {
	weights  domain.WeightRepository
	profiles domain.ProfileRepository
	loc      *time.Location
	now      func() time.Time
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(wr domain.WeightRepository, pr domain.ProfileRepository) *DashboardService {
	return &DashboardService{weights: wr, profiles: pr, loc: time.Local, now: time.Now}
}

// Summary is the dashboard payload. Nil BMI, Progress and DaysSinceLast mean
// the value cannot be computed from the data on file.
type Summary struct {
	Profile       domain.Profile      `json:"profile"`
	Latest        *domain.WeightEntry `json:"latest"`
	EntryCount    int                 `json:"entryCount"`
	Streak        int                 `json:"streak"`
	StreakMessage string              `json:"streakMessage"`
	StreakBadge   string              `json:"streakBadge"`
	DaysSinceLast *int                `json:"daysSinceLast"`
	BMI           *domain.BMI         `json:"bmi"`
	Progress      *domain.Progress    `json:"progress"`
}

// Summary computes streak, BMI and goal progress for userID.
func (s *DashboardService) Summary(ctx context.Context, userID int64) (*Summary, error) {
	entries, err := s.weights.ListEntries(ctx, userID, domain.EntryFilter{})
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		profile = &domain.Profile{UserID: userID}
	case err != nil:
		return nil, err
	}

	streak := domain.ComputeStreakIn(entries, s.loc)
	sum := &Summary{
		Profile:       *profile,
		EntryCount:    len(entries),
		Streak:        streak,
		StreakMessage: domain.StreakMessage(streak),
		StreakBadge:   domain.StreakBadge(streak),
	}

	latest := latestEntry(entries)
	if latest == nil {
		return sum, nil
	}
	sum.Latest = latest

	days := domain.DaysSince(latest.Date, s.now(), s.loc)
	sum.DaysSinceLast = &days

	if bmi, ok := domain.ComputeBMI(latest.Weight, profile.Height()); ok {
		sum.BMI = &bmi
	}
	if p, ok := domain.ComputeProgress(profile.Start(), latest.Weight, profile.Goal()); ok {
		sum.Progress = &p
	}
	return sum, nil
}

// latestEntry returns the entry with the greatest date, ties broken by
// creation time. Repository order is not relied upon.
func latestEntry(entries []domain.WeightEntry) *domain.WeightEntry {
	var latest *domain.WeightEntry
	for i := range entries {
		e := &entries[i]
		if latest == nil || e.Date.After(latest.Date) ||
			(e.Date.Equal(latest.Date) && e.CreatedAt.After(latest.CreatedAt)) {
			latest = e
		}
	}
	if latest == nil {
		return nil
	}
	cp := *latest
	return &cp
}
