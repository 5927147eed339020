package coefficients

import "math"
import "github.com/oplcore/oplcore/opltypes"

// AH calculates the AH (Haleczko) formula: points = A1 / log10(bw)^A2
// * total, with sex-specific constants and clamped bodyweight domain.
func AH(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}

	var a1, a2, lo, hi float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		a1, a2, lo, hi = 3.2695, 1.95, 32.0, 157.0
	default:
		a1, a2, lo, hi = 2.7566, 1.8, 28.0, 112.0
	}

	adjusted := clamp(bodyweight.Float64(), lo, hi)
	logbw := math.Log10(adjusted)
	coefficient := a1 / math.Pow(logbw, a2)
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}
