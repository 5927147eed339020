package opltypes

import "fmt"

// BirthYearClass is similar to AgeClass, but computed from birth year
// rather than reported age. IPF-affiliated federations report divisions
// this way: a lifter is in a class for the entire calendar year in
// which they turn the class's boundary age, regardless of their exact
// birthday relative to the meet date.
type BirthYearClass uint8

const (
	BirthYearClassNone BirthYearClass = iota
	BirthYearClassY14Y18
	BirthYearClassY19Y23
	BirthYearClassY24Y39
	BirthYearClassY40Y49
	BirthYearClassY50Y59
	BirthYearClassY60Y69
	BirthYearClassY70Y999
)

// BirthYearClassFromBirthYear assigns a BirthYearClass by matching on
// the maximum age the lifter could reach during meetYear.
func BirthYearClassFromBirthYear(birthYear, meetYear int) BirthYearClass {
	if meetYear < birthYear {
		return BirthYearClassNone
	}
	age := meetYear - birthYear
	switch {
	case age >= 14 && age <= 18:
		return BirthYearClassY14Y18
	case age >= 19 && age <= 23:
		return BirthYearClassY19Y23
	case age >= 24 && age <= 39:
		return BirthYearClassY24Y39
	case age >= 40 && age <= 49:
		return BirthYearClassY40Y49
	case age >= 50 && age <= 59:
		return BirthYearClassY50Y59
	case age >= 60 && age <= 69:
		return BirthYearClassY60Y69
	case age >= 70:
		return BirthYearClassY70Y999
	default:
		return BirthYearClassNone
	}
}

// Range returns the inclusive Approximate-age bounds of the class. Both
// bounds are Approximate, since a BirthYearClass always spans the year
// in which the lifter turns the boundary age, not an exact day.
func (c BirthYearClass) Range() (AgeRange, bool) {
	switch c {
	case BirthYearClassY14Y18:
		return AgeRange{Min: 14, Max: 18}, true
	case BirthYearClassY19Y23:
		return AgeRange{Min: 19, Max: 23}, true
	case BirthYearClassY24Y39:
		return AgeRange{Min: 24, Max: 39}, true
	case BirthYearClassY40Y49:
		return AgeRange{Min: 40, Max: 49}, true
	case BirthYearClassY50Y59:
		return AgeRange{Min: 50, Max: 59}, true
	case BirthYearClassY60Y69:
		return AgeRange{Min: 60, Max: 69}, true
	case BirthYearClassY70Y999:
		return AgeRange{Min: 70, Max: 255}, true
	default:
		return AgeRange{}, false
	}
}

// ParseBirthYearClass parses the CSV spelling of a BirthYearClass, the
// inverse of String.
func ParseBirthYearClass(s string) (BirthYearClass, error) {
	for class := BirthYearClassY14Y18; class <= BirthYearClassY70Y999; class++ {
		if class.String() == s {
			return class, nil
		}
	}
	return BirthYearClassNone, fmt.Errorf("opltypes: invalid BirthYearClass %q", s)
}

func (c BirthYearClass) String() string {
	switch c {
	case BirthYearClassY14Y18:
		return "14-18"
	case BirthYearClassY19Y23:
		return "19-23"
	case BirthYearClassY24Y39:
		return "24-39"
	case BirthYearClassY40Y49:
		return "40-49"
	case BirthYearClassY50Y59:
		return "50-59"
	case BirthYearClassY60Y69:
		return "60-69"
	case BirthYearClassY70Y999:
		return "70-999"
	default:
		return ""
	}
}
