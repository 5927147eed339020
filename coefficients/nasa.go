package coefficients

import "github.com/oplcore/oplcore/opltypes"

// nasaM, nasaB are the linear-fit parameters of the NASA coefficient,
// found by fitting the published coefficient table in GNUPlot: the
// per-kg coefficient itself grows with bodyweight, M*bw + B.
const (
	nasaM = 0.00620912
	nasaB = 0.565697
)

// NASA calculates the NASA formula, one of the oldest relative-
// strength scores: points = (total / bodyweightkg) * (M*bodyweightkg
// + B). Like Hoffman, and unlike the other formulas in this package, it
// makes no sex distinction.
func NASA(bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.Float64() < 30.0 || total.IsZero() {
		return opltypes.ZeroPoints
	}
	bw := bodyweight.Float64()
	return opltypes.PointsFromFloat64((total.Float64() / bw) * (nasaM*bw + nasaB))
}
