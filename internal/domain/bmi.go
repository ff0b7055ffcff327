package domain

// BMICategory is the weight-status band a BMI value falls into.
type BMICategory string

// BMI categories, lowest band first.
const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// BMISeverity is the display weight of a category: how far it sits from
// the healthy band.
type BMISeverity string

// BMI severities.
const (
	SeverityLow      BMISeverity = "low"
	SeverityHealthy  BMISeverity = "healthy"
	SeverityElevated BMISeverity = "elevated"
	SeverityHigh     BMISeverity = "high"
)

// Severity returns the display severity of c.
func (c BMICategory) Severity() BMISeverity {
	switch c {
	case BMIUnderweight:
		return SeverityLow
	case BMINormal:
		return SeverityHealthy
	case BMIOverweight:
		return SeverityElevated
	default:
		return SeverityHigh
	}
}

// BMI is a body mass index rounded to one decimal with its band.
type BMI struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
	Severity BMISeverity `json:"severity"`
}

// ComputeBMI derives the BMI from a weight in kg and a height in cm.
// ok is false when either input is missing (<= 0) or the ratio is not a
// finite number; a zero BMI is never reported as a computed value.
func ComputeBMI(weightKg, heightCm float64) (bmi BMI, ok bool) {
	if !positive(weightKg) || !positive(heightCm) {
		return BMI{}, false
	}
	m := heightCm / 100
	raw := weightKg / (m * m)
	if !finite(raw) {
		return BMI{}, false
	}
	v := round1(raw)
	c := ClassifyBMI(v)
	return BMI{Value: v, Category: c, Severity: c.Severity()}, true
}

// ClassifyBMI maps an already rounded BMI value to its category.
func ClassifyBMI(v float64) BMICategory {
	switch {
	case v < 18.5:
		return BMIUnderweight
	case v < 25:
		return BMINormal
	case v < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
