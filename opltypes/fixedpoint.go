// Package opltypes defines the domain primitives shared by every other
// package in this module: weights, points, dates, ages, and the small
// enumerations that describe a competition entry.
package opltypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fixedScale is the number of fractional decimal digits stored for
// WeightKg and Points: both are two-decimal fixed-point values backed
// by a signed integer, so that arithmetic and ordering are exact over
// that grid (no float drift when totalling attempts).
const fixedScale = 100

// roundHalfToEven rounds x to the nearest integer, breaking ties toward
// the nearest even integer. Used when constructing a fixed-point value
// from a float64/float32, per the documented construction rule.
func roundHalfToEven(x float64) int64 {
	return int64(math.RoundToEven(x))
}

// fixedFromFloat64 converts a float64 magnitude into fixedScale units,
// rounding half-to-even.
func fixedFromFloat64(f float64) int32 {
	return int32(roundHalfToEven(f * fixedScale))
}

// fixedString renders a fixedScale-scaled integer with two decimal
// places, rounding half-away-from-zero (which is a no-op here since the
// value is already an exact integer at that scale) and trimming
// trailing zero fractional digits when trim is true.
func fixedString(v int32, trim bool) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := v / fixedScale
	frac := v % fixedScale

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(int64(whole), 10))

	if frac == 0 && trim {
		return b.String()
	}

	b.WriteByte('.')
	fracStr := strconv.FormatInt(int64(frac), 10)
	for len(fracStr) < 2 {
		fracStr = "0" + fracStr
	}
	if trim {
		fracStr = strings.TrimRight(fracStr, "0")
	}
	b.WriteString(fracStr)
	return b.String()
}

// fixedFromString parses a plain decimal string (optionally empty, in
// which case it returns zero and ok=false) into fixedScale units.
func fixedFromString(s string) (int32, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	wholeStr, fracStr, hasFrac := strings.Cut(s, ".")
	if wholeStr == "" {
		wholeStr = "0"
	}
	whole, err := strconv.ParseInt(wholeStr, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("opltypes: invalid numeric field %q: %w", s, err)
	}

	var frac int64
	if hasFrac {
		for len(fracStr) < 2 {
			fracStr += "0"
		}
		if len(fracStr) > 2 {
			fracStr = fracStr[:2]
		}
		frac, err = strconv.ParseInt(fracStr, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("opltypes: invalid numeric field %q: %w", s, err)
		}
	}

	total := whole*fixedScale + frac
	if neg {
		total = -total
	}
	return int32(total), true, nil
}
