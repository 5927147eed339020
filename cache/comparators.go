package cache

import (
	"github.com/oplcore/oplcore/store"
)

// Comparator reports whether entry a should sort before entry b under
// an OrderBy's tie-break chain: primary metric descending (higher is
// better), then bodyweight ascending, then meet date ascending, then
// total descending (prefer the best performance on the same day).
type Comparator func(s *store.Store, a, b store.EntryID) bool

// metricFns resolves the primary sort metric for one OrderBy value.
// Every metric returns 0 for an entry where it is undefined so the
// shared tie-break chain still has deterministic ordering among equal
// zero values.
var metricFns = map[OrderBy]func(e *store.Entry) int64{
	OrderBySquat:        func(e *store.Entry) int64 { return int64(e.HighestSquatKg()) },
	OrderByBench:        func(e *store.Entry) int64 { return int64(e.HighestBenchKg()) },
	OrderByDeadlift:     func(e *store.Entry) int64 { return int64(e.HighestDeadliftKg()) },
	OrderByTotal:        func(e *store.Entry) int64 { return int64(e.TotalKg) },
	OrderByWilks:        func(e *store.Entry) int64 { return int64(e.Points.Wilks) },
	OrderByWilks2020:    func(e *store.Entry) int64 { return int64(e.Points.Wilks2020) },
	OrderByDots:         func(e *store.Entry) int64 { return int64(e.Points.Dots) },
	OrderByGlossbrenner: func(e *store.Entry) int64 { return int64(e.Points.Glossbrenner) },
	OrderByIPF:          func(e *store.Entry) int64 { return int64(e.Points.IPF) },
	OrderByGoodlift:     func(e *store.Entry) int64 { return int64(e.Points.Goodlift) },
	OrderByMcCulloch:    func(e *store.Entry) int64 { return int64(e.Points.McCulloch) },
}

// NewComparator builds the full tie-break chain for an OrderBy value.
func NewComparator(order OrderBy) Comparator {
	metric := metricFns[order]
	return func(s *store.Store, a, b store.EntryID) bool {
		ea, eb := s.Entry(a), s.Entry(b)

		ma, mb := metric(ea), metric(eb)
		if ma != mb {
			return ma > mb // higher is better
		}
		if ea.BodyweightKg != eb.BodyweightKg {
			return ea.BodyweightKg < eb.BodyweightKg
		}
		da := s.Meet(ea.MeetID).Date
		db := s.Meet(eb.MeetID).Date
		if da != db {
			return da < db
		}
		if ea.TotalKg != eb.TotalKg {
			return ea.TotalKg > eb.TotalKg
		}
		return ea.ID < eb.ID // final deterministic tie-break
	}
}

// FilterPredicateFor reports whether an entry is eligible for a given
// OrderBy's comparator at all: disqualified entries, and entries whose
// primary metric is not positive, are excluded entirely rather than
// sorted to the bottom. Exported so callers outside this package (the
// query engine's uncached path) can apply the same exclusion rule the
// cache's own global orders already enforce.
func FilterPredicateFor(order OrderBy) func(e *store.Entry) bool {
	metric := metricFns[order]
	return func(e *store.Entry) bool {
		if e.Place.IsDQ() {
			return false
		}
		return metric(e) > 0
	}
}
