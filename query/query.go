package query

import (
	"sort"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/store"
)

// RankingsQuery is a filter paired with a sort order.
type RankingsQuery struct {
	Filter  Filter
	OrderBy cache.OrderBy
}

// Ranking is the materialized result of a RankingsQuery: a window
// [Start, End] of the full per-lifter-uniqued result, plus the total
// length so callers can compute pagination.
type Ranking struct {
	EntryIDs    []store.EntryID
	TotalLength int
}

// MaxWindow bounds the number of rows a single Query call returns, per
// spec: end - start + 1 is always <= 100.
const MaxWindow = 100

// Query runs the five-step ranking algorithm against a frozen store
// and its cache: resolve filter axes to cached SNUs or the universe,
// intersect, apply residual predicates, sort (skipping the sort when a
// cached global order already covers the query), unique by lifter, and
// take the requested window.
func Query(s *store.Store, c *cache.Cache, q RankingsQuery, start, end int) Ranking {
	if end-start+1 > MaxWindow {
		end = start + MaxWindow - 1
	}

	candidate, sortedAlready := resolveAndIntersect(s, c, q)
	candidate = applyResidualFilters(s, q.Filter, candidate)

	var ordered []store.EntryID
	if sortedAlready {
		// candidate is already a subsequence of a globally sorted
		// order; walking it in place preserves that order in O(n)
		// instead of re-sorting.
		ordered = candidate
	} else {
		pred := cache.FilterPredicateFor(q.OrderBy)
		cmp := cache.NewComparator(q.OrderBy)
		ordered = make([]store.EntryID, 0, len(candidate))
		for _, id := range candidate {
			if pred(s.Entry(id)) {
				ordered = append(ordered, id)
			}
		}
		sortEntries(s, ordered, cmp)
	}

	unique := uniqueByLifter(s, ordered, c.NumLifters())

	total := len(unique)
	if start >= total {
		return Ranking{EntryIDs: nil, TotalLength: total}
	}
	if end >= total {
		end = total - 1
	}
	return Ranking{EntryIDs: unique[start : end+1], TotalLength: total}
}

// resolveAndIntersect resolves every filter axis to a cached SNU (or
// the universe when unconstrained), intersects them smallest-first,
// and reports whether the result is already a subsequence of the
// cache's global order for q.OrderBy (true only when every axis
// resolved to a cached SNU and no residual predicate remains, i.e. the
// common case of equipment+sex+event+year filters with no weight
// class, age class, or state constraint).
func resolveAndIntersect(s *store.Store, c *cache.Cache, q RankingsQuery) ([]store.EntryID, bool) {
	f := q.Filter
	var snus []cache.SNU
	fullyCached := true

	if !f.AnyEquipment {
		if snu, ok := c.Equipment(f.Equipment); ok {
			snus = append(snus, snu)
		} else {
			fullyCached = false
		}
	}

	if !f.AnySex {
		snus = append(snus, c.Sex(f.Sex))
	}

	if f.Event != cache.EventFilterAll {
		snus = append(snus, c.Event(f.Event))
	}

	if !f.AnyYear {
		if snu, ok := c.Year(f.Year); ok {
			snus = append(snus, snu)
		} else {
			snus = append(snus, c.AllYears())
			fullyCached = false
		}
	}

	if !f.Federation.Any {
		if f.Federation.UseMeta {
			snus = append(snus, c.MetaFederation(f.Federation.MetaFederation))
		} else {
			fullyCached = false // single-federation membership isn't cached per-federation
		}
	}

	if f.WeightClass.Kind != 0 || !f.AnyState || f.AgeClass != 0 {
		fullyCached = false
	}

	var intersected cache.SNU
	if len(snus) == 0 {
		intersected = c.AllYears() // universe, in entry-id order
	} else {
		intersected = cache.IntersectAll(snus...)
	}

	ids := make([]store.EntryID, len(intersected))
	for i, v := range intersected {
		ids[i] = store.EntryID(v)
	}

	// A fully-cached intersection is put in order by walking the
	// OrderBy's global order instead of sorting. Any filter the cache
	// does not cover (single federation, state, weight class, age
	// class, an uncached year or equipment) cleared fullyCached above.
	sortedAlready := false
	if fullyCached {
		ids = filterAgainstGlobalOrder(s, c, q.OrderBy, ids)
		sortedAlready = true
	}
	return ids, sortedAlready
}

// filterAgainstGlobalOrder walks the cache's global order for orderBy
// and keeps only the entry ids present in the candidate set,
// preserving the global order's sequence — the O(N) alternative to
// re-sorting when the candidate set is already a subset of a cached
// ordering.
func filterAgainstGlobalOrder(s *store.Store, c *cache.Cache, orderBy cache.OrderBy, candidate []store.EntryID) []store.EntryID {
	present := make(map[store.EntryID]struct{}, len(candidate))
	for _, id := range candidate {
		present[id] = struct{}{}
	}

	global := c.GlobalOrder(orderBy)
	out := make([]store.EntryID, 0, len(candidate))
	for _, id := range global {
		if _, ok := present[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// sortEntries sorts ids in place against cmp. Weight-class, age-class,
// state, and single-federation filters all take this uncached path and
// are not bounded to small candidate sets (an all-time single weight
// class is a common query shape), so this uses the standard library's
// introsort rather than a quadratic sort.
func sortEntries(s *store.Store, ids []store.EntryID, cmp cache.Comparator) {
	sort.Slice(ids, func(i, j int) bool {
		return cmp(s, ids[i], ids[j])
	})
}

// uniqueByLifter walks a sorted entry-id list and emits the first
// entry seen per lifter, using a bitset for O(1) membership per spec's
// "#lifters" sizing.
func uniqueByLifter(s *store.Store, ordered []store.EntryID, numLifters int) []store.EntryID {
	seen := make([]bool, numLifters)
	out := make([]store.EntryID, 0, len(ordered))
	for _, id := range ordered {
		lifterID := s.Entry(id).LifterID
		if seen[lifterID] {
			continue
		}
		seen[lifterID] = true
		out = append(out, id)
	}
	return out
}
