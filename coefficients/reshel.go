package coefficients

import (
	"math"

	"github.com/oplcore/oplcore/opltypes"
)

// reshelCoefficientMen evaluates the men's Reshel curve: a power-law
// curve of best fit, since Reshel is published only as a heavily
// rounded coefficient table with no closed form. At worst this is off
// by about six Reshel points (0.01) at middleweight bodyweights.
func reshelCoefficientMen(bodyweightkg float64) float64 {
	const a = 23740.8329088123
	const b = -9.75618720662844
	const c = 0.787990994925928
	const d = -2.68445158813578

	normalized := clamp(bodyweightkg, 50.0, 174.75)
	return a*math.Pow(normalized+b, d) + c
}

// reshelCoefficientWomen evaluates the women's Reshel curve.
func reshelCoefficientWomen(bodyweightkg float64) float64 {
	const a = 239.894659799145
	const b = -20.5105859285582
	const c = 1.16052601684125
	const d = -1.61417872668708

	normalized := clamp(bodyweightkg, 40.0, 118.75)
	return a*math.Pow(normalized+b, d) + c
}

// Reshel calculates Reshel points.
func Reshel(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var coefficient float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		coefficient = reshelCoefficientMen(bodyweight.Float64())
	default:
		coefficient = reshelCoefficientWomen(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}
