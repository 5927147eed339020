package store

import (
	"fmt"
	"sync/atomic"

	"github.com/oplcore/oplcore/opltypes"
)

// Store holds the three entity tables and the lookup structures built
// on top of them. It has two lifecycle states: Loading, during which
// only the loader goroutine touches it, and Frozen, after which it is
// immutable and safe to read from any number of goroutines without
// locking. The transition is one-way.
type Store struct {
	frozen int32 // set via sync/atomic; 0 = Loading, 1 = Frozen

	lifters []Lifter
	meets   []Meet
	entries []Entry

	usernameIndex map[opltypes.Username]LifterID
	meetPathIndex map[string]MeetID

	// lifterMap maps a lifter to its entry ids, sorted ascending by
	// (meet date, meet id) per invariant 6. Built by csvload and never
	// touched again.
	lifterMap map[LifterID][]EntryID
}

// New returns an empty Store in the Loading state, with capacity
// reserved for the given row counts (see csvload's counting pass).
func New(lifterCap, meetCap, entryCap int) *Store {
	return &Store{
		lifters:       make([]Lifter, 0, lifterCap),
		meets:         make([]Meet, 0, meetCap),
		entries:       make([]Entry, 0, entryCap),
		usernameIndex: make(map[opltypes.Username]LifterID, lifterCap),
		meetPathIndex: make(map[string]MeetID, meetCap),
		lifterMap:     make(map[LifterID][]EntryID, lifterCap),
	}
}

// mustBeLoading panics if the store has already been frozen. This is a
// programmer-error guard, not a runtime condition: a frozen store is
// never mutated by correctly written code.
func (s *Store) mustBeLoading() {
	if atomic.LoadInt32(&s.frozen) != 0 {
		panic("store: mutation attempted after Freeze")
	}
}

// AddLifter appends a lifter, assigning it the next dense LifterID. It
// returns an error if the username is already taken.
func (s *Store) AddLifter(l Lifter) (LifterID, error) {
	s.mustBeLoading()
	if _, exists := s.usernameIndex[l.Username]; exists {
		return 0, fmt.Errorf("store: duplicate username %q", l.Username)
	}
	id := LifterID(len(s.lifters))
	l.ID = id
	s.lifters = append(s.lifters, l)
	s.usernameIndex[l.Username] = id
	return id, nil
}

// AddMeet appends a meet, assigning it the next dense MeetID. It
// returns an error if the path is already taken.
func (s *Store) AddMeet(m Meet) (MeetID, error) {
	s.mustBeLoading()
	if _, exists := s.meetPathIndex[m.Path]; exists {
		return 0, fmt.Errorf("store: duplicate meet path %q", m.Path)
	}
	id := MeetID(len(s.meets))
	m.ID = id
	s.meets = append(s.meets, m)
	s.meetPathIndex[m.Path] = id
	return id, nil
}

// AddEntry appends an entry, assigning it the next dense EntryID and
// bucketing it into lifterMap. Bucket sorting happens once, in
// SortLifterMap, after every entry has been added.
func (s *Store) AddEntry(e Entry) EntryID {
	s.mustBeLoading()
	id := EntryID(len(s.entries))
	e.ID = id
	s.entries = append(s.entries, e)
	s.lifterMap[e.LifterID] = append(s.lifterMap[e.LifterID], id)
	return id
}

// SortLifterMap sorts every lifter's entry bucket by (meet date, meet
// id), per invariant 6. Called once by csvload before Freeze.
func (s *Store) SortLifterMap() {
	s.mustBeLoading()
	for lifterID, bucket := range s.lifterMap {
		sortEntriesByMeetDate(bucket, s)
		s.lifterMap[lifterID] = bucket
	}
}

// ComputeNumUniqueLifters fills in Meet.NumUniqueLifters for every
// meet by counting distinct lifters among its entries. Called once by
// csvload before Freeze.
func (s *Store) ComputeNumUniqueLifters() {
	s.mustBeLoading()
	seen := make(map[MeetID]map[LifterID]struct{}, len(s.meets))
	for i := range s.entries {
		e := &s.entries[i]
		set, ok := seen[e.MeetID]
		if !ok {
			set = make(map[LifterID]struct{})
			seen[e.MeetID] = set
		}
		set[e.LifterID] = struct{}{}
	}
	for meetID, set := range seen {
		s.meets[meetID].NumUniqueLifters = len(set)
	}
}

// Freeze transitions the store from Loading to Frozen. After Freeze,
// every read method below is safe to call concurrently without
// synchronization, and every mutating method panics.
func (s *Store) Freeze() {
	atomic.StoreInt32(&s.frozen, 1)
}

// Frozen reports whether the store has completed loading.
func (s *Store) Frozen() bool {
	return atomic.LoadInt32(&s.frozen) != 0
}

// NumLifters, NumMeets, and NumEntries report the size of each table.
func (s *Store) NumLifters() int { return len(s.lifters) }
func (s *Store) NumMeets() int   { return len(s.meets) }
func (s *Store) NumEntries() int { return len(s.entries) }

// Lifter, Meet, and Entry look up an entity by its dense id in O(1).
func (s *Store) Lifter(id LifterID) *Lifter { return &s.lifters[id] }
func (s *Store) Meet(id MeetID) *Meet       { return &s.meets[id] }
func (s *Store) Entry(id EntryID) *Entry    { return &s.entries[id] }

// LifterByUsername resolves a normalized username to a lifter id.
func (s *Store) LifterByUsername(u opltypes.Username) (LifterID, bool) {
	id, ok := s.usernameIndex[u]
	return id, ok
}

// MeetByPath resolves a meet path to a meet id.
func (s *Store) MeetByPath(path string) (MeetID, bool) {
	id, ok := s.meetPathIndex[path]
	return id, ok
}

// EntriesForLifter returns the lifter's entry ids, sorted ascending by
// meet date (invariant 6). Returns nil for a lifter with no entries.
func (s *Store) EntriesForLifter(id LifterID) []EntryID {
	return s.lifterMap[id]
}

// AllEntryIDs returns the universe slice [0, NumEntries), used as the
// base SNU when a query filter axis has no constraint.
func (s *Store) AllEntryIDs() []EntryID {
	ids := make([]EntryID, len(s.entries))
	for i := range ids {
		ids[i] = EntryID(i)
	}
	return ids
}

func sortEntriesByMeetDate(bucket []EntryID, s *Store) {
	// Insertion sort: lifter buckets are small (a career's worth of
	// meets, rarely more than a few hundred), and the entries arrive
	// close to date order already since entries.csv is itself
	// chronological by convention, so insertion sort's near-sorted
	// fast path beats a general-purpose sort here.
	for i := 1; i < len(bucket); i++ {
		j := i
		for j > 0 && lessByMeetDate(s, bucket[j], bucket[j-1]) {
			bucket[j], bucket[j-1] = bucket[j-1], bucket[j]
			j--
		}
	}
}

func lessByMeetDate(s *Store, a, b EntryID) bool {
	ma := s.meets[s.entries[a].MeetID]
	mb := s.meets[s.entries[b].MeetID]
	if ma.Date != mb.Date {
		return ma.Date < mb.Date
	}
	return ma.ID < mb.ID
}
