package opltypes

import "fmt"

// Sex is the competitor's sex division.
type Sex uint8

const (
	SexMale Sex = iota
	SexFemale
	// SexMx is a dichotomous-sex non-binary division. Every coefficient
	// formula in this package treats it identically to SexMale, matching
	// how the formulas' own reference implementations handle Mx.
	SexMx
)

// ParseSex parses the CSV "Sex" column, which is "M", "F", or "Mx".
func ParseSex(s string) (Sex, error) {
	switch s {
	case "M":
		return SexMale, nil
	case "F":
		return SexFemale, nil
	case "Mx":
		return SexMx, nil
	default:
		return 0, fmt.Errorf("opltypes: invalid Sex %q", s)
	}
}

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	case SexMx:
		return "Mx"
	default:
		return "?"
	}
}
