package app

import (
	"context"
	"time"

	"abbed/internal/domain"
)

// Chart window bounds in days.
const (
	DefaultChartDays = 90
	MaxChartDays     = 366
)

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	weightRepo domain.WeightRepository
	loc        *time.Location
	now        func() time.Time
}

// NewChartsService creates a ChartsService backed by the given repository.
func NewChartsService(wr domain.WeightRepository) *ChartsService {
	return &ChartsService{weightRepo: wr, loc: time.Local, now: time.Now}
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day    string       `json:"day"`
	Weight *WeightPoint `json:"weight"`
}

// WeightPoint is the optional weight value within a DayPoint.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns one point per calendar day for the last days days, oldest
// first. Each point carries the latest entry of that day converted to unit.
func (s *ChartsService) GetDaily(ctx context.Context, userID int64, days int, unit string) ([]DayPoint, error) {
	if !domain.ValidUnit(unit) {
		return nil, invalid("unit must be \"kg\" or \"lb\"")
	}
	if days <= 0 {
		days = DefaultChartDays
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	y, m, d := s.now().In(s.loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	entries, err := s.weightRepo.ListEntries(ctx, userID, domain.EntryFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	latest := make(map[string]domain.WeightEntry, len(entries))
	for _, e := range entries {
		day := e.Day(s.loc)
		cur, ok := latest[day]
		if !ok || e.Date.After(cur.Date) || (e.Date.Equal(cur.Date) && e.CreatedAt.After(cur.CreatedAt)) {
			latest[day] = e
		}
	}

	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStr := today.AddDate(0, 0, -i).Format(domain.DayLayout)

		var wp *WeightPoint
		if e, ok := latest[dayStr]; ok {
			wp = &WeightPoint{Value: domain.ConvertWeight(e.Weight, domain.UnitKg, unit), Unit: unit}
		}
		points = append(points, DayPoint{Day: dayStr, Weight: wp})
	}
	return points, nil
}
