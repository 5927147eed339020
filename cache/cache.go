package cache

import (
	"sort"

	"github.com/oplcore/oplcore/config"
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

// EventFilter names one of the event-axis slices the cache
// materializes, distinct from opltypes.Event because "Push-Pull" and
// "All" are query conveniences, not bitset values entries carry
// directly (though Push-Pull does coincide with opltypes.EventPushPull).
type EventFilter uint8

const (
	EventFilterSBD EventFilter = iota
	EventFilterSquatOnly
	EventFilterBenchOnly
	EventFilterDeadliftOnly
	EventFilterPushPull
	EventFilterAll
)

// Cache holds every precomputed index list the query package composes
// at request time. It is built once, after the store is frozen, and is
// itself immutable thereafter.
type Cache struct {
	byEquipment map[opltypes.Equipment]SNU
	rawOrWraps  SNU

	bySex map[opltypes.Sex]SNU

	byYear    map[int]SNU
	allYears  SNU

	byEvent map[EventFilter]SNU

	byMetaFederation     map[MetaFederation]SNU
	metaFederationMeets  map[MetaFederation][]store.MeetID

	globalOrder map[OrderBy][]store.EntryID

	numLifters int
}

// Build materializes every cached list over a frozen store, using cfg
// to size the recent-years window and to resolve meta-federation
// membership. Panics if the store has not been frozen, since a cache
// over a mutable store could silently go stale.
func Build(s *store.Store, cfg config.Config) *Cache {
	if !s.Frozen() {
		panic("cache: Build called on a store that has not been frozen")
	}

	c := &Cache{
		byEquipment:         make(map[opltypes.Equipment]SNU),
		bySex:                make(map[opltypes.Sex]SNU),
		byYear:               make(map[int]SNU),
		byEvent:              make(map[EventFilter]SNU),
		byMetaFederation:     make(map[MetaFederation]SNU),
		metaFederationMeets:  make(map[MetaFederation][]store.MeetID),
		globalOrder:          make(map[OrderBy][]store.EntryID),
		numLifters:           s.NumLifters(),
	}

	c.buildFilterSlices(s, cfg)
	c.buildMetaFederations(s, cfg)
	c.buildGlobalOrders(s)
	return c
}

func (c *Cache) buildFilterSlices(s *store.Store, cfg config.Config) {
	n := s.NumEntries()

	equipmentBuckets := map[opltypes.Equipment]SNU{
		opltypes.EquipmentRaw:   make(SNU, 0, n),
		opltypes.EquipmentWraps: make(SNU, 0, n),
		opltypes.EquipmentSingle: make(SNU, 0, n),
		opltypes.EquipmentMulti:  make(SNU, 0, n),
	}
	sexBuckets := map[opltypes.Sex]SNU{
		opltypes.SexMale:   make(SNU, 0, n),
		opltypes.SexFemale: make(SNU, 0, n),
	}
	yearBuckets := make(map[int]SNU)
	eventBuckets := map[EventFilter]SNU{
		EventFilterSBD:          make(SNU, 0, n),
		EventFilterSquatOnly:    make(SNU, 0, n),
		EventFilterBenchOnly:    make(SNU, 0, n),
		EventFilterDeadliftOnly: make(SNU, 0, n),
		EventFilterPushPull:     make(SNU, 0, n),
		EventFilterAll:          make(SNU, 0, n),
	}
	allYears := make(SNU, 0, n)

	for i := 0; i < n; i++ {
		id := uint32(i)
		e := s.Entry(store.EntryID(id))

		if bucket, ok := equipmentBuckets[e.Equipment]; ok {
			equipmentBuckets[e.Equipment] = append(bucket, id)
		}

		if bucket, ok := sexBuckets[e.Sex]; ok {
			sexBuckets[e.Sex] = append(bucket, id)
		}

		year := s.Meet(e.MeetID).Date.Year()
		yearBuckets[year] = append(yearBuckets[year], id)
		allYears = append(allYears, id)

		eventBuckets[EventFilterAll] = append(eventBuckets[EventFilterAll], id)
		switch {
		case e.Event == opltypes.EventSBD:
			eventBuckets[EventFilterSBD] = append(eventBuckets[EventFilterSBD], id)
		case e.Event == opltypes.EventPushPull:
			eventBuckets[EventFilterPushPull] = append(eventBuckets[EventFilterPushPull], id)
		case e.Event == opltypes.EventSquat:
			eventBuckets[EventFilterSquatOnly] = append(eventBuckets[EventFilterSquatOnly], id)
		case e.Event == opltypes.EventBench:
			eventBuckets[EventFilterBenchOnly] = append(eventBuckets[EventFilterBenchOnly], id)
		case e.Event == opltypes.EventDeadlift:
			eventBuckets[EventFilterDeadliftOnly] = append(eventBuckets[EventFilterDeadliftOnly], id)
		}
	}

	c.byEquipment = equipmentBuckets
	c.rawOrWraps = Union(equipmentBuckets[opltypes.EquipmentRaw], equipmentBuckets[opltypes.EquipmentWraps])
	c.bySex = sexBuckets
	c.byEvent = eventBuckets
	c.allYears = allYears

	// Only the most recent cfg.RecentYearsWindow distinct years get a
	// dedicated cached SNU; everything else is reachable only through
	// AllYears plus a residual scan.
	years := make([]int, 0, len(yearBuckets))
	for y := range yearBuckets {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	if len(years) > cfg.RecentYearsWindow {
		years = years[:cfg.RecentYearsWindow]
	}
	c.byYear = make(map[int]SNU, len(years))
	for _, y := range years {
		c.byYear[y] = yearBuckets[y]
	}
}

func (c *Cache) buildMetaFederations(s *store.Store, cfg config.Config) {
	n := s.NumEntries()
	rules := resolveMetaFederationRules(cfg)
	for _, mf := range AllMetaFederations {
		pred := membershipPredicate(rules[mf])
		entries := make(SNU, 0, n)
		meetSeen := make(map[store.MeetID]struct{})
		var meets []store.MeetID

		for i := 0; i < n; i++ {
			id := store.EntryID(i)
			e := s.Entry(id)
			meet := s.Meet(e.MeetID)
			if !pred(meet.Federation, e.Tested) {
				continue
			}
			entries = append(entries, uint32(id))
			if _, ok := meetSeen[meet.ID]; !ok {
				meetSeen[meet.ID] = struct{}{}
				meets = append(meets, meet.ID)
			}
		}

		sort.Slice(meets, func(i, j int) bool {
			return s.Meet(meets[i]).Date > s.Meet(meets[j]).Date
		})

		c.byMetaFederation[mf] = entries
		c.metaFederationMeets[mf] = meets
	}
}

func (c *Cache) buildGlobalOrders(s *store.Store) {
	n := s.NumEntries()
	for _, order := range AllOrderBy {
		pred := FilterPredicateFor(order)
		cmp := NewComparator(order)

		ids := make([]store.EntryID, 0, n)
		for i := 0; i < n; i++ {
			id := store.EntryID(i)
			if pred(s.Entry(id)) {
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return cmp(s, ids[i], ids[j]) })
		c.globalOrder[order] = ids
	}
}

// Equipment returns the cached SNU for one equipment category, or nil
// if that category is not individually cached (only Raw, Wraps,
// Single, and Multi get dedicated slices).
func (c *Cache) Equipment(eq opltypes.Equipment) (SNU, bool) {
	snu, ok := c.byEquipment[eq]
	return snu, ok
}

// RawOrWraps returns the union of Raw and Wraps, the common case for
// "natural/unequipped" rankings.
func (c *Cache) RawOrWraps() SNU { return c.rawOrWraps }

// Sex returns the cached SNU for one sex.
func (c *Cache) Sex(sex opltypes.Sex) SNU { return c.bySex[sex] }

// Year returns the cached SNU for one calendar year, or false if that
// year falls outside the recent-years window and must be resolved via
// AllYears plus a residual scan instead.
func (c *Cache) Year(year int) (SNU, bool) {
	snu, ok := c.byYear[year]
	return snu, ok
}

// AllYears returns the full-universe SNU, ordered by entry id.
func (c *Cache) AllYears() SNU { return c.allYears }

// Event returns the cached SNU for one event filter.
func (c *Cache) Event(f EventFilter) SNU { return c.byEvent[f] }

// MetaFederation returns the cached SNU for one meta-federation.
func (c *Cache) MetaFederation(mf MetaFederation) SNU { return c.byMetaFederation[mf] }

// MetaFederationMeets returns the meet ids belonging to a
// meta-federation, sorted by date descending.
func (c *Cache) MetaFederationMeets(mf MetaFederation) []store.MeetID {
	return c.metaFederationMeets[mf]
}

// GlobalOrder returns the full, globally sorted entry-id list for an
// OrderBy value. Already excludes disqualified and metric-undefined
// entries per FilterPredicateFor.
func (c *Cache) GlobalOrder(order OrderBy) []store.EntryID {
	return c.globalOrder[order]
}

// NumLifters reports the lifter count the cache was built against,
// sized for the uniqueing bitset in the query package.
func (c *Cache) NumLifters() int { return c.numLifters }
