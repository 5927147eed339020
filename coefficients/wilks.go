package coefficients

import "github.com/oplcore/oplcore/opltypes"

// wilksCoefficient evaluates the common fifth-degree Wilks polynomial:
// 500 / (a + bx + cx^2 + dx^3 + ex^4 + fx^5).
func wilksCoefficient(a, b, c, d, e, f, x float64) float64 {
	return 500.0 / poly5(f, e, d, c, b, a, x)
}

// wilksCoefficientMen returns the men's Wilks coefficient for a given
// bodyweight in kilograms.
func wilksCoefficientMen(bodyweightkg float64) float64 {
	const a = -216.0475144
	const b = 16.2606339
	const c = -0.002388645
	const d = -0.00113732
	const e = 7.01863e-06
	const f = -1.291e-08

	// Upper bound avoids the asymptote; lower bound avoids children
	// with huge coefficients.
	adjusted := clamp(bodyweightkg, 40.0, 201.9)
	return wilksCoefficient(a, b, c, d, e, f, adjusted)
}

// wilksCoefficientWomen returns the women's Wilks coefficient.
func wilksCoefficientWomen(bodyweightkg float64) float64 {
	const a = 594.31747775582
	const b = -27.23842536447
	const c = 0.82112226871
	const d = -0.00930733913
	const e = 0.00004731582
	const f = -0.00000009054

	adjusted := clamp(bodyweightkg, 26.51, 154.53)
	return wilksCoefficient(a, b, c, d, e, f, adjusted)
}

// Wilks calculates Wilks points.
func Wilks(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var coefficient float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		coefficient = wilksCoefficientMen(bodyweight.Float64())
	default:
		coefficient = wilksCoefficientWomen(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
