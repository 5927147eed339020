package coefficients

import "github.com/oplcore/oplcore/opltypes"

// ageCoefficients is the published McCulloch age-handicap lookup
// table, AGE_COEFFICIENTS[age]. Ages 0-4 are nonsense (no lifters that
// young compete); 5-13 are low-balled guesses; 14-22 are the Foster
// coefficients; 23-40 carry no handicap; 41-80 are the McCulloch
// coefficients (corrected against the Glossbrenner Masters table);
// 81-90 are the USAPL Twin Ports table; above 90 is an unstandardized
// guess. Transcribed verbatim from the published table.
var ageCoefficients = [101]float64{
	0.0, 0.0, 0.0, 0.0, 0.0, // 0-4
	1.73, 1.67, 1.61, 1.55, 1.49, 1.43, 1.38, 1.33, 1.28, // 5-13
	1.23, 1.18, 1.13, 1.08, 1.06, 1.04, 1.03, 1.02, 1.01, // 14-22
	1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, // 23-40
	1.010, 1.020, 1.031, 1.043, 1.055, 1.068, 1.082, 1.097, 1.113, 1.130, // 41-50
	1.147, 1.165, 1.184, 1.204, 1.225, 1.246, 1.268, 1.291, 1.315, 1.340, // 51-60
	1.366, 1.393, 1.421, 1.450, 1.480, 1.511, 1.543, 1.576, 1.610, 1.645, // 61-70
	1.681, 1.718, 1.756, 1.795, 1.835, 1.876, 1.918, 1.961, 2.005, 2.050, // 71-80
	2.096, 2.143, 2.190, 2.238, 2.287, 2.337, 2.388, 2.440, 2.494, 2.549, // 81-90
	2.605, 2.662, 2.720, 2.779, 2.839, 2.900, 2.962, 3.025, 3.089, 3.154, // 91-100
}

// ageCoefficient resolves the McCulloch multiplier for an Age value.
// Approximate ages round in the direction of least generosity: Juniors
// (under 30) assume the higher age, Masters (30 and up) assume the
// lower age, so an ambiguous half-year age never receives the more
// favorable coefficient.
func ageCoefficient(age opltypes.Age) float64 {
	switch age.Kind {
	case opltypes.AgeNone:
		return 1.0
	case opltypes.AgeApproximate:
		n := int(age.Value)
		if n < 30 {
			n++
		}
		return ageCoefficientAt(n)
	default:
		return ageCoefficientAt(int(age.Value))
	}
}

func ageCoefficientAt(n int) float64 {
	if n >= len(ageCoefficients) {
		return ageCoefficients[len(ageCoefficients)-1]
	}
	if n < 0 {
		n = 0
	}
	return ageCoefficients[n]
}

// McCulloch calculates McCulloch points: the raw Wilks coefficient
// multiplied by the lifter's age handicap. "McCulloch" specifically
// refers to only the Masters range of age coefficients, but the name
// was popularized by the USPA as the general term for Age-Adjusted
// Wilks.
func McCulloch(sex opltypes.Sex, bodyweight, total opltypes.WeightKg, age opltypes.Age) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var wilksCoeff float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		wilksCoeff = wilksCoefficientMen(bodyweight.Float64())
	default:
		wilksCoeff = wilksCoefficientWomen(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(wilksCoeff * total.Float64() * ageCoefficient(age))
}
