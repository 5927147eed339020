package opltypes

// Country identifies a lifter's or meet's home country. Like
// Federation, the real corpus carries a long tail of country spellings
// (see original_source/server/src/opldb/fields/country.rs); Country is
// modeled as a validated string newtype rather than an exhaustive enum.
type Country string

// ParseCountry accepts any non-empty string as a country name. An empty
// string means "unknown" and is represented by the caller as a missing
// *Country, not by this function.
func ParseCountry(s string) Country {
	return Country(s)
}

func (c Country) String() string {
	return string(c)
}

// State is a federation-specific state/province/region code, used both
// as an optional Meet field and as an optional per-entry override.
type State string

func (s State) String() string {
	return string(s)
}
