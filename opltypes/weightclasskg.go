package opltypes

import (
	"fmt"
	"strings"
)

// WeightClassKgKind distinguishes the WeightClassKg variants.
type WeightClassKgKind uint8

const (
	// WeightClassNone means no weight class is recorded.
	WeightClassNone WeightClassKgKind = iota
	// WeightClassUnderOrEqual means the lifter weighed in at or below
	// the class limit, e.g. "90" -> 90kg class.
	WeightClassUnderOrEqual
	// WeightClassOver means the lifter weighed in above the top class,
	// e.g. "90+" -> super-heavyweight.
	WeightClassOver
)

// WeightClassKg is the declared weight class of an entry, distinct
// from the lifter's actual bodyweight.
type WeightClassKg struct {
	Kind  WeightClassKgKind
	Value WeightKg // valid when Kind != WeightClassNone
}

// ParseWeightClassKg parses the CSV syntax: a bare number, a number
// with a trailing '+', or an empty string for "no weight class".
func ParseWeightClassKg(s string) (WeightClassKg, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WeightClassKg{}, nil
	}

	kind := WeightClassUnderOrEqual
	if strings.HasSuffix(s, "+") {
		kind = WeightClassOver
		s = strings.TrimSuffix(s, "+")
	}

	w, ok, err := fixedFromString(s)
	if err != nil {
		return WeightClassKg{}, fmt.Errorf("opltypes: invalid WeightClassKg %q: %w", s, err)
	}
	if !ok {
		return WeightClassKg{}, fmt.Errorf("opltypes: invalid WeightClassKg %q", s)
	}

	return WeightClassKg{Kind: kind, Value: WeightKg(w)}, nil
}

func (c WeightClassKg) String() string {
	switch c.Kind {
	case WeightClassUnderOrEqual:
		return c.Value.String()
	case WeightClassOver:
		return c.Value.String() + "+"
	default:
		return ""
	}
}

// Matches reports whether a lifter's bodyweight falls within this
// weight class.
func (c WeightClassKg) Matches(bodyweight WeightKg) bool {
	switch c.Kind {
	case WeightClassUnderOrEqual:
		return bodyweight <= c.Value
	case WeightClassOver:
		return bodyweight > c.Value
	default:
		return false
	}
}
