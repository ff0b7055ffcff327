package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// round1 rounds v to one decimal place, half away from zero. Going through
// decimal avoids binary artifacts such as 22.85*10 = 228.49999999999997.
// Non-finite values are returned unchanged.
func round1(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// roundInt rounds half away from zero; non-finite values yield 0.
func roundInt(v float64) int {
	if !finite(v) {
		return 0
	}
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func positive(v float64) bool {
	return v > 0 && finite(v)
}
