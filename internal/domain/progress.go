package domain

import "math"

// Progress describes how far a user is between start and goal weight.
type Progress struct {
	Percent     int     `json:"percent"`
	TotalLoss   float64 `json:"totalLoss"`
	Remaining   float64 `json:"remaining"`
	GoalReached bool    `json:"goalReached"`
}

// ComputeProgress derives goal progress from start, current and goal weight.
// ok is false when any of them is missing (<= 0).
//
// Reaching or passing the goal saturates at 100% with nothing remaining.
// Otherwise the percentage is lost/(start-goal) clamped to [0, 100]. A goal
// that is not below the start weight leaves nothing to divide by, so an
// unreached goal of that kind is reported as unavailable.
func ComputeProgress(start, current, goal float64) (p Progress, ok bool) {
	if !positive(start) || !positive(current) || !positive(goal) {
		return Progress{}, false
	}

	totalLoss := round1(math.Max(0, start-current))
	if current <= goal {
		return Progress{Percent: 100, TotalLoss: totalLoss, GoalReached: true}, true
	}

	toLose := start - goal
	if toLose <= 0 {
		return Progress{}, false
	}
	pct := (start - current) / toLose * 100
	return Progress{
		Percent:   roundInt(math.Min(100, math.Max(0, pct))),
		TotalLoss: totalLoss,
		Remaining: round1(current - goal),
	}, true
}
