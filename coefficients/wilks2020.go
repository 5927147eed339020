package coefficients

import "github.com/oplcore/oplcore/opltypes"

// wilks2020CoefficientMen returns the men's Wilks2020 coefficient,
// using the same fifth-degree-polynomial shape as the original Wilks
// formula but with IPF-published 2020 refit coefficients.
func wilks2020CoefficientMen(bodyweightkg float64) float64 {
	const a = 47.46178854
	const b = 8.472061379
	const c = 0.07369410346
	const d = -0.001395833811
	const e = 0.00000707665973070743
	const f = -0.0000000120804336482315

	adjusted := clamp(bodyweightkg, 40.0, 201.9)
	return wilksCoefficient(a, b, c, d, e, f, adjusted)
}

// wilks2020CoefficientWomen returns the women's Wilks2020 coefficient.
func wilks2020CoefficientWomen(bodyweightkg float64) float64 {
	const a = -125.4255398
	const b = 13.71219419
	const c = -0.03307250631
	const d = -0.001050400051
	const e = 0.00000938773881462799
	const f = -0.0000000023334613884954

	adjusted := clamp(bodyweightkg, 26.51, 154.53)
	return wilksCoefficient(a, b, c, d, e, f, adjusted)
}

// Wilks2020 calculates Wilks2020 points, the 2020 refit of the
// original Wilks formula.
func Wilks2020(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var coefficient float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		coefficient = wilks2020CoefficientMen(bodyweight.Float64())
	default:
		coefficient = wilks2020CoefficientWomen(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}
