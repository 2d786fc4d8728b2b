package analysis

import "math"

const (
	MinScore = 0
	MaxScore = 100
)

// Clamp constrains v to [MinScore, MaxScore]. Nil, NaN and infinite values
// yield nil. The result may be fractional.
func Clamp(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}

	clamped := math.Max(MinScore, math.Min(MaxScore, *v))
	return &clamped
}
