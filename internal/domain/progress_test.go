package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abbed/internal/domain"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name                 string
		start, current, goal float64
		want                 domain.Progress
	}{
		{
			name:  "not started",
			start: 100, current: 100, goal: 80,
			want: domain.Progress{Percent: 0, TotalLoss: 0, Remaining: 20},
		},
		{
			name:  "halfway",
			start: 100, current: 90, goal: 80,
			want: domain.Progress{Percent: 50, TotalLoss: 10, Remaining: 10},
		},
		{
			name:  "rounds percent and kilos",
			start: 100, current: 93.33, goal: 80,
			want: domain.Progress{Percent: 33, TotalLoss: 6.7, Remaining: 13.3},
		},
		{
			name:  "gained since start",
			start: 100, current: 104, goal: 80,
			want: domain.Progress{Percent: 0, TotalLoss: 0, Remaining: 24},
		},
		{
			name:  "goal reached exactly",
			start: 100, current: 80, goal: 80,
			want: domain.Progress{Percent: 100, TotalLoss: 20, Remaining: 0, GoalReached: true},
		},
		{
			name:  "goal passed",
			start: 100, current: 75, goal: 80,
			want: domain.Progress{Percent: 100, TotalLoss: 25, Remaining: 0, GoalReached: true},
		},
		{
			name:  "start equals goal and reached",
			start: 80, current: 79, goal: 80,
			want: domain.Progress{Percent: 100, TotalLoss: 1, Remaining: 0, GoalReached: true},
		},
		{
			name:  "goal above start but reached",
			start: 70, current: 74, goal: 75,
			want: domain.Progress{Percent: 100, TotalLoss: 0, Remaining: 0, GoalReached: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := domain.ComputeProgress(tc.start, tc.current, tc.goal)
			require.True(t, ok)
			assert.Equal(t, tc.want.Percent, got.Percent)
			assert.InDelta(t, tc.want.TotalLoss, got.TotalLoss, 1e-9)
			assert.InDelta(t, tc.want.Remaining, got.Remaining, 1e-9)
			assert.Equal(t, tc.want.GoalReached, got.GoalReached)
		})
	}
}

func TestComputeProgress_Unavailable(t *testing.T) {
	for _, in := range [][3]float64{
		{0, 90, 80},
		{100, 0, 80},
		{100, 90, 0},
		{-1, 90, 80},
		{80, 82, 80}, // start equals goal, not reached
		{70, 80, 75}, // goal above start, not reached
		{100, math.Inf(1), 80},
	} {
		got, ok := domain.ComputeProgress(in[0], in[1], in[2])
		assert.False(t, ok, "input %v", in)
		assert.Equal(t, domain.Progress{}, got)
	}
}

func TestComputeProgress_Deterministic(t *testing.T) {
	a, _ := domain.ComputeProgress(100, 91.2, 80)
	b, _ := domain.ComputeProgress(100, 91.2, 80)
	assert.Equal(t, a, b)
}
