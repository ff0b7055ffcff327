package domain

const kgToLb = 2.2046226218

// Supported weight units.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// ValidUnit reports whether u is a supported weight unit.
func ValidUnit(u string) bool {
	return u == UnitKg || u == UnitLb
}

// ConvertWeight converts v between kg and lb. Same or unknown units return v
// unchanged.
func ConvertWeight(v float64, from, to string) float64 {
	switch {
	case from == UnitKg && to == UnitLb:
		return v * kgToLb
	case from == UnitLb && to == UnitKg:
		return v / kgToLb
	default:
		return v
	}
}
