package opltypes

// AgeRange is an inclusive (min, max) pair of exact-integer age bounds
// used to express division age classes (e.g. Sub-Junior, Open, Masters
// brackets). The zero value, {0, 0}, admits only age 0;
// DefaultAgeRange is the maximally permissive range.
type AgeRange struct {
	Min uint8
	Max uint8
}

// DefaultAgeRange returns the empty/unconstrained range: [0, 255].
func DefaultAgeRange() AgeRange {
	return AgeRange{Min: 0, Max: 255}
}

// Intersect narrows two AgeRanges to their overlap. If the ranges don't
// overlap, it returns the empty default range (Min=1, Max=0, i.e. an
// inverted, unsatisfiable range) rather than erroring, matching
// spec.md's "returns the empty default if inconsistent" rule.
func (r AgeRange) Intersect(other AgeRange) AgeRange {
	min := r.Min
	if other.Min > min {
		min = other.Min
	}
	max := r.Max
	if other.Max < max {
		max = other.Max
	}
	if min > max {
		return AgeRange{Min: 1, Max: 0}
	}
	return AgeRange{Min: min, Max: max}
}

// IsEmpty reports whether the range can never be satisfied.
func (r AgeRange) IsEmpty() bool {
	return r.Min > r.Max
}

// ContainsAge reports whether the given Age falls within the range.
// An unknown Age never matches a constrained range. An Approximate age
// matches if either of its two possible exact ages could fall in range.
func (r AgeRange) ContainsAge(a Age) bool {
	switch a.Kind {
	case AgeExact:
		return a.Value >= r.Min && a.Value <= r.Max
	case AgeApproximate:
		return (a.Value >= r.Min && a.Value <= r.Max) ||
			(a.Value+1 >= r.Min && a.Value+1 <= r.Max)
	default:
		return false
	}
}
