package coefficients

import "github.com/oplcore/oplcore/opltypes"

// schwartzCoefficient evaluates the men's Schwartz polynomial, the
// pre-Wilks bodyweight-adjustment formula still used as one half of
// the Glossbrenner blend at every bodyweight.
func schwartzCoefficient(bodyweightkg float64) float64 {
	const a = -0.00000010930
	const b = 0.00073913
	const c = -0.1918759
	const d = 24.0900756
	const e = -307.75076

	adjusted := clamp(bodyweightkg, 40.0, 125.0)
	x2 := adjusted * adjusted
	poly := a*x2*x2 + b*adjusted*x2 + c*x2 + d*adjusted + e
	return 500.0 / poly
}

// maloneCoefficient evaluates the women's Malone polynomial.
func maloneCoefficient(bodyweightkg float64) float64 {
	const a = -0.00000010706
	const b = 0.00051586
	const c = -0.1126655
	const d = 13.6175032
	const e = -57.96288

	adjusted := clamp(bodyweightkg, 40.0, 95.0)
	x2 := adjusted * adjusted
	poly := a*x2*x2 + b*adjusted*x2 + c*x2 + d*adjusted + e
	return 500.0 / poly
}

// SchwartzMalone calculates Schwartz (men) or Malone (women) points, the
// superseded predecessor of Wilks that Glossbrenner still blends with at
// every bodyweight.
func SchwartzMalone(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var coefficient float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		coefficient = schwartzCoefficient(bodyweight.Float64())
	default:
		coefficient = maloneCoefficient(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}
