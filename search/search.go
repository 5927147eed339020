// Package search scans a materialized ranking for the first entry
// whose lifter matches a free-form, script-aware query string.
package search

import (
	"strings"

	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

// Find scans ranking[startRow:] and returns the index of the first
// entry whose lifter matches query, or -1 if none does. Matching
// order: normalized username/Instagram substring first (in either
// forward or "Lastname Firstname" reversed form), then the
// script-specific name column implied by the query's inferred writing
// system.
func Find(s *store.Store, ranking []store.EntryID, startRow int, query string) int {
	query = strings.ReplaceAll(query, "_", "")
	ws := opltypes.InferWritingSystem(query)

	normalized, _ := opltypes.FromName(query)
	backwards := backwardsForm(query)
	var normalizedBackwards opltypes.Username
	if backwards != "" {
		normalizedBackwards, _ = opltypes.FromName(backwards)
	}

	for i := startRow; i < len(ranking); i++ {
		entry := s.Entry(ranking[i])
		lifter := s.Lifter(entry.LifterID)

		if matchesUsername(lifter, normalized, normalizedBackwards) {
			return i
		}
		if matchesScriptName(lifter, ws, query, backwards) {
			return i
		}
	}
	return -1
}

func matchesUsername(l *store.Lifter, normalized, backwards opltypes.Username) bool {
	if normalized != "" {
		if l.Username.Contains(normalized.String()) {
			return true
		}
		if instagramContains(l.Instagram, normalized.String()) {
			return true
		}
	}
	if backwards != "" {
		if l.Username.Contains(backwards.String()) {
			return true
		}
	}
	return false
}

func matchesScriptName(l *store.Lifter, ws opltypes.WritingSystem, query, backwards string) bool {
	var column string
	switch ws {
	case opltypes.WritingSystemCyrillic:
		column = l.CyrillicName
	case opltypes.WritingSystemGreek:
		column = l.GreekName
	case opltypes.WritingSystemJapanese:
		column = l.JapaneseName
	case opltypes.WritingSystemKorean:
		column = l.KoreanName
	default:
		return false
	}
	if column == "" {
		return false
	}
	if strings.Contains(column, query) {
		return true
	}
	return backwards != "" && strings.Contains(column, backwards)
}

// backwardsForm computes the "Lastname Firstname" typing convenience:
// whitespace-split the query, reverse the token order, and rejoin with
// single spaces. Single-token queries have no meaningful reversed
// form.
func backwardsForm(query string) string {
	fields := strings.Fields(query)
	if len(fields) < 2 {
		return ""
	}
	for i, j := 0, len(fields)-1; i < j; i, j = i+1, j-1 {
		fields[i], fields[j] = fields[j], fields[i]
	}
	return strings.Join(fields, " ")
}

// instagramContains reports whether handle contains normalized as a
// substring. Instagram handles commonly carry punctuation (periods,
// underscores) that opltypes.FromName would reject outright, so the
// handle is matched case-insensitively in its raw form rather than run
// through username normalization; normalized (the query side) is
// already lowercase ASCII.
func instagramContains(handle, normalized string) bool {
	if handle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(handle), normalized)
}
