package coefficients

import "github.com/oplcore/oplcore/opltypes"

// dotsCoefficient evaluates the common fourth-degree Dots polynomial:
// 500 / (a*x^4 + b*x^3 + c*x^2 + d*x + e).
func dotsCoefficient(a, b, c, d, e, x float64) float64 {
	return 500.0 / poly4(a, b, c, d, e, x)
}

func dotsCoefficientMen(bodyweightkg float64) float64 {
	const a = -0.0000010930
	const b = 0.0007391293
	const c = -0.1918759221
	const d = 24.0900756
	const e = -307.75076

	adjusted := clamp(bodyweightkg, 40.0, 210.0)
	return dotsCoefficient(a, b, c, d, e, adjusted)
}

func dotsCoefficientWomen(bodyweightkg float64) float64 {
	const a = -0.0000010706
	const b = 0.0005158568
	const c = -0.1126655495
	const d = 13.6175032
	const e = -57.96288

	adjusted := clamp(bodyweightkg, 40.0, 150.0)
	return dotsCoefficient(a, b, c, d, e, adjusted)
}

// Dots calculates Dots points.
func Dots(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var coefficient float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		coefficient = dotsCoefficientMen(bodyweight.Float64())
	default:
		coefficient = dotsCoefficientWomen(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}
