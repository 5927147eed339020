package coefficients

import "github.com/oplcore/oplcore/opltypes"

// glossbrennerCoefficientMen averages the Schwartz curve with Wilks
// below the crossover bodyweight; above it, Wilks is replaced by a
// linear fit, which is still averaged with the Schwartz curve.
func glossbrennerCoefficientMen(bodyweightkg float64) float64 {
	const crossover = 153.05
	if bodyweightkg < crossover {
		return (schwartzCoefficient(bodyweightkg) + wilksCoefficientMen(bodyweightkg)) / 2.0
	}
	const a = -0.000821668402557
	const b = 0.676940740094416
	return (schwartzCoefficient(bodyweightkg) + a*bodyweightkg + b) / 2.0
}

// glossbrennerCoefficientWomen is the women's analog, blending Malone
// with Wilks below the crossover bodyweight and with a linear fit
// above it.
func glossbrennerCoefficientWomen(bodyweightkg float64) float64 {
	const crossover = 106.3
	if bodyweightkg < crossover {
		return (maloneCoefficient(bodyweightkg) + wilksCoefficientWomen(bodyweightkg)) / 2.0
	}
	const a = -0.000313738002024
	const b = 0.852664892884785
	return (maloneCoefficient(bodyweightkg) + a*bodyweightkg + b) / 2.0
}

// Glossbrenner calculates Glossbrenner points.
func Glossbrenner(sex opltypes.Sex, bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	var coefficient float64
	switch sex {
	case opltypes.SexMale, opltypes.SexMx:
		coefficient = glossbrennerCoefficientMen(bodyweight.Float64())
	default:
		coefficient = glossbrennerCoefficientWomen(bodyweight.Float64())
	}
	return opltypes.PointsFromFloat64(coefficient * total.Float64())
}
