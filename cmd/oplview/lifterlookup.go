package main

import (
	"fmt"

	"github.com/oplcore/oplcore/menu/fuzzy"
	"github.com/oplcore/oplcore/store"
)

// lifterIndex is a fuzzy search index over every lifter's display name
// and username, letting the browser jump straight to a lifter's entry
// history across the whole corpus instead of only the current
// windowed ranking.
type lifterIndex struct {
	s     *store.Store
	index *fuzzy.Index
}

func buildLifterIndex(s *store.Store) *lifterIndex {
	records := make([]string, s.NumLifters())
	for i := 0; i < s.NumLifters(); i++ {
		l := s.Lifter(store.LifterID(i))
		records[i] = fmt.Sprintf("%s %s", l.Name, l.Username)
	}
	return &lifterIndex{s: s, index: fuzzy.NewIndex(records)}
}

// search returns matching lifter IDs, most-relevant first.
func (li *lifterIndex) search(query string) []store.LifterID {
	ids := li.index.Search(query)
	out := make([]store.LifterID, len(ids))
	for i, id := range ids {
		out[i] = store.LifterID(id)
	}
	return out
}

// enterLookup switches the browser into lifter-lookup mode: the filter
// buffer is repurposed as the fuzzy query, and Enter jumps to the best
// match's entry history sorted by meet date rather than applying a
// query.Filter.
func (b *browser) enterLookup() {
	if b.lifters == nil {
		b.lifters = buildLifterIndex(b.s)
	}
	b.lookingUpLifter = true
	b.filterBuf = b.filterBuf[:0]
}

func (b *browser) applyLookup(query string) {
	matches := b.lifters.search(query)
	if len(matches) == 0 {
		b.statusMsg = fmt.Sprintf("no lifter matches %q", query)
		return
	}

	lifterID := matches[0]
	entries := b.s.EntriesForLifter(lifterID)
	if len(entries) == 0 {
		b.statusMsg = fmt.Sprintf("lifter %q has no entries", b.s.Lifter(lifterID).Name)
		return
	}

	b.viewingLifterHistory = true
	b.lifterHistory = entries
	b.windowStart = 0
	b.cursor = 0
	b.statusMsg = fmt.Sprintf("showing %d entries for %s", len(entries), b.s.Lifter(lifterID).Name)
}

// exitLookup returns to the normal ranking view.
func (b *browser) exitLookup() {
	b.viewingLifterHistory = false
	b.lifterHistory = nil
	b.windowStart = 0
	b.runQuery()
}
