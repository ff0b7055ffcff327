package app

import "time"

// SetClock pins the clock and calendar location used by the service.
func (s *ChartsService) SetClock(now func() time.Time, loc *time.Location) {
	s.now, s.loc = now, loc
}

// SetClock pins the clock and calendar location used by the service.
func (s *DashboardService) SetClock(now func() time.Time, loc *time.Location) {
	s.now, s.loc = now, loc
}

// SetClock pins the clock used for default and future-date checks.
func (s *WeightService) SetClock(now func() time.Time) {
	s.now = now
}
