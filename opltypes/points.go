package opltypes

// Points is a scoring-formula result, stored as a fixed-point integer
// with two fractional decimal digits. Points are never negative in
// practice (formulas clamp to zero), but the type itself permits
// negative values so intermediate arithmetic doesn't need guards.
type Points int32

// ZeroPoints is returned by every formula when its inputs are
// undefined (zero bodyweight, zero total, or bodyweight outside the
// formula's published support).
const ZeroPoints Points = 0

// PointsFromInt32 builds a Points value from a whole-number score.
func PointsFromInt32(p int32) Points {
	return Points(int32(p) * fixedScale)
}

// PointsFromFloat64 builds a Points value from a float, rounding
// half-to-even to the nearest hundredth of a point.
func PointsFromFloat64(f float64) Points {
	return Points(fixedFromFloat64(f))
}

// PointsFromFloat32 is a convenience wrapper around PointsFromFloat64.
func PointsFromFloat32(f float32) Points {
	return PointsFromFloat64(float64(f))
}

// IsZero reports whether the points value is exactly zero.
func (p Points) IsZero() bool {
	return p == 0
}

// Float64 returns the points as a float64.
func (p Points) Float64() float64 {
	return float64(p) / fixedScale
}

// String renders points with exactly two fractional digits, e.g.
// Points(60858) -> "608.58".
func (p Points) String() string {
	return fixedString(int32(p), false)
}
