package opltypes

import "fmt"

// AgeClass buckets an entry's Age into a coarse division class, used as
// a residual filter axis distinct from the raw Age value. Unlike
// BirthYearClass (which IPF federations compute from birth year), this
// is computed directly from the reported Age.
type AgeClass uint8

const (
	AgeClassNone AgeClass = iota
	AgeClass0_16
	AgeClass0_18
	AgeClass19_23
	AgeClass24_39
	AgeClass40_44
	AgeClass45_49
	AgeClass50_54
	AgeClass55_59
	AgeClass60_64
	AgeClass65_69
	AgeClass70_74
	AgeClass75_79
	AgeClass80_999
)

var ageClassRanges = map[AgeClass]AgeRange{
	AgeClass0_16:   {Min: 0, Max: 16},
	AgeClass0_18:   {Min: 17, Max: 18},
	AgeClass19_23:  {Min: 19, Max: 23},
	AgeClass24_39:  {Min: 24, Max: 39},
	AgeClass40_44:  {Min: 40, Max: 44},
	AgeClass45_49:  {Min: 45, Max: 49},
	AgeClass50_54:  {Min: 50, Max: 54},
	AgeClass55_59:  {Min: 55, Max: 59},
	AgeClass60_64:  {Min: 60, Max: 64},
	AgeClass65_69:  {Min: 65, Max: 69},
	AgeClass70_74:  {Min: 70, Max: 74},
	AgeClass75_79:  {Min: 75, Max: 79},
	AgeClass80_999: {Min: 80, Max: 255},
}

// AgeClassFromAge assigns the AgeClass bucket containing the given Age.
// Returns AgeClassNone if the age is unknown or falls in no bucket.
func AgeClassFromAge(a Age) AgeClass {
	if !a.IsKnown() {
		return AgeClassNone
	}
	for class, r := range ageClassRanges {
		if r.ContainsAge(a) {
			return class
		}
	}
	return AgeClassNone
}

// Range returns the inclusive age bounds of the class, or
// (AgeRange{}, false) for AgeClassNone.
func (c AgeClass) Range() (AgeRange, bool) {
	r, ok := ageClassRanges[c]
	return r, ok
}

// ParseAgeClass parses the CSV spelling of an AgeClass, the inverse of
// String.
func ParseAgeClass(s string) (AgeClass, error) {
	for class := AgeClass0_16; class <= AgeClass80_999; class++ {
		if class.String() == s {
			return class, nil
		}
	}
	return AgeClassNone, fmt.Errorf("opltypes: invalid AgeClass %q", s)
}

func (c AgeClass) String() string {
	switch c {
	case AgeClass0_16:
		return "0-16"
	case AgeClass0_18:
		return "17-18"
	case AgeClass19_23:
		return "19-23"
	case AgeClass24_39:
		return "24-39"
	case AgeClass40_44:
		return "40-44"
	case AgeClass45_49:
		return "45-49"
	case AgeClass50_54:
		return "50-54"
	case AgeClass55_59:
		return "55-59"
	case AgeClass60_64:
		return "60-64"
	case AgeClass65_69:
		return "65-69"
	case AgeClass70_74:
		return "70-74"
	case AgeClass75_79:
		return "75-79"
	case AgeClass80_999:
		return "80-999"
	default:
		return ""
	}
}
