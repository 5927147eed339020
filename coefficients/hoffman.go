package coefficients

import "math"
import "github.com/oplcore/oplcore/opltypes"

// hoffmanFactor is the scaling constant of Bob Hoffman's 1942 formula.
// With it, a 90.72kg bodyweight and a 146.06kg total (the original
// Davis reference lifter) score 218.63.
const hoffmanFactor = 30.221682118754234

// Hoffman calculates the Hoffman formula, the oldest bodyweight
// adjustment in this package and the only one expressed as a fixed
// root rather than a fitted curve: points = total / bodyweightkg^(2/3)
// * hoffmanFactor. No sex distinction.
func Hoffman(bodyweight, total opltypes.WeightKg) opltypes.Points {
	if bodyweight.IsZero() || total.IsZero() {
		return opltypes.ZeroPoints
	}
	root := math.Pow(bodyweight.Float64(), 2.0/3.0)
	return opltypes.PointsFromFloat64(total.Float64() / root * hoffmanFactor)
}
