package opltypes

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeKind distinguishes the three Age variants.
type AgeKind uint8

const (
	// AgeNone means the age is unknown.
	AgeNone AgeKind = iota
	// AgeExact means the age is known precisely.
	AgeExact
	// AgeApproximate means the age is a half-year reporting lower bound:
	// the lifter is either N or N+1.
	AgeApproximate
)

// Age is a lifter's age at a meet. The zero value is AgeNone.
type Age struct {
	Kind  AgeKind
	Value uint8 // valid when Kind != AgeNone
}

// ParseAge parses the CSV "Age" column. An empty string is AgeNone. A
// plain integer is AgeExact. A value with a trailing ".5" (e.g. "23.5")
// is AgeApproximate, reported as the lower bound ("23.5" means 23 or 24).
func ParseAge(s string) (Age, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Age{}, nil
	}

	if whole, frac, ok := strings.Cut(s, "."); ok {
		if frac != "5" {
			return Age{}, fmt.Errorf("opltypes: invalid Age %q", s)
		}
		n, err := strconv.ParseUint(whole, 10, 8)
		if err != nil {
			return Age{}, fmt.Errorf("opltypes: invalid Age %q: %w", s, err)
		}
		return Age{Kind: AgeApproximate, Value: uint8(n)}, nil
	}

	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Age{}, fmt.Errorf("opltypes: invalid Age %q: %w", s, err)
	}
	return Age{Kind: AgeExact, Value: uint8(n)}, nil
}

// IsKnown reports whether the age carries any information.
func (a Age) IsKnown() bool {
	return a.Kind != AgeNone
}

func (a Age) String() string {
	switch a.Kind {
	case AgeExact:
		return strconv.Itoa(int(a.Value))
	case AgeApproximate:
		return strconv.Itoa(int(a.Value)) + ".5"
	default:
		return ""
	}
}
