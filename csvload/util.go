package csvload

import (
	"strconv"
	"strings"

	"github.com/oplcore/oplcore/opltypes"
)

// checkHeader validates a CSV header matches the documented column
// order exactly. Extra or reordered columns are rejected to prevent
// silent schema drift, per spec's ingest contract.
func checkHeader(file string, got, want []string) error {
	if len(got) != len(want) {
		return ingestErrf(file, 1, "expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return ingestErrf(file, 1, "column %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	return nil
}

// parseWeight parses a WeightKg column, treating empty as "unknown"
// (zero value).
func parseWeight(file string, line int, column, raw string) (opltypes.WeightKg, error) {
	if raw == "" {
		return opltypes.ZeroWeightKg, nil
	}
	w, _, err := opltypes.ParseWeightKg(raw)
	if err != nil {
		return 0, ingestErrf(file, line, "column %s: invalid WeightKg %q: %v", column, raw, err)
	}
	return w, nil
}

// parsePoints parses a Points column the same way parseWeight does.
func parsePoints(file string, line int, column, raw string) (opltypes.Points, error) {
	if raw == "" {
		return opltypes.ZeroPoints, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ingestErrf(file, line, "column %s: invalid Points %q: %v", column, raw, err)
	}
	return opltypes.PointsFromFloat64(v), nil
}

// parseBool parses the CSV's Yes/No convention.
func parseBool(file string, line int, column, raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "no", "n":
		return false, nil
	case "yes", "y":
		return true, nil
	default:
		return false, ingestErrf(file, line, "column %s: invalid boolean %q", column, raw)
	}
}
