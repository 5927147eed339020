// Package store holds the in-memory, column-oriented representation of
// the powerlifting corpus: three dense, index-addressed entity tables
// (lifters, meets, entries) plus the lookup maps built on top of them.
// A Store is written once by a loader on a single goroutine and then
// frozen; after that it is immutable and safe to share across any
// number of reader goroutines without synchronization.
package store

import (
	"github.com/oplcore/oplcore/opltypes"
)

// LifterID, MeetID, and EntryID are dense, zero-based indices into
// Store.lifters, Store.meets, and Store.entries respectively. They are
// assigned in CSV ingest order and never reused.
type LifterID uint32
type MeetID uint32
type EntryID uint32

// Lifter is a single athlete, keyed by a normalized Username.
type Lifter struct {
	ID            LifterID
	Username      opltypes.Username
	Name          string
	CyrillicName  string
	GreekName     string
	JapaneseName  string
	KoreanName    string
	ChineseName   string
	Instagram     string
	VKontakte     string
	Color         string
}

// Meet is a single competition.
type Meet struct {
	ID               MeetID
	Path             string
	Federation       opltypes.Federation
	ParentFederation opltypes.Federation
	Date             opltypes.Date
	Country          opltypes.Country
	State            opltypes.State
	Town             string
	Name             string
	RuleSet          opltypes.RuleSet
	Sanctioned       bool

	// NumUniqueLifters is precomputed during ingest by counting
	// distinct LifterIDs across the meet's entries.
	NumUniqueLifters int
}

// Attempts holds one lift's four attempts plus the best successful one.
// A non-positive attempt value means it was missed or not taken; Best3
// is zero iff every attempt was missed or not taken.
type Attempts struct {
	Attempt1, Attempt2, Attempt3, Attempt4 opltypes.WeightKg
	Best3                                   opltypes.WeightKg
}

// Points holds one entry's precomputed score for every supported
// scoring system, so queries never recompute a formula on the hot path.
type Points struct {
	Wilks        opltypes.Points
	Wilks2020    opltypes.Points
	Dots         opltypes.Points
	Glossbrenner opltypes.Points
	SchwartzMalone opltypes.Points
	Goodlift     opltypes.Points
	IPF          opltypes.Points
	Reshel       opltypes.Points
	NASA         opltypes.Points
	Hoffman      opltypes.Points
	AH           opltypes.Points
	McCulloch    opltypes.Points
}

// Entry is one lifter's performance at one meet.
type Entry struct {
	ID       EntryID
	MeetID   MeetID
	LifterID LifterID

	Sex       opltypes.Sex
	Event     opltypes.Event
	Equipment opltypes.Equipment
	Age       opltypes.Age
	AgeRange  opltypes.AgeRange
	AgeClass        opltypes.AgeClass
	BirthYearClass  opltypes.BirthYearClass
	Division  string

	BodyweightKg  opltypes.WeightKg
	WeightClassKg opltypes.WeightClassKg

	Squat    Attempts
	Bench    Attempts
	Deadlift Attempts
	TotalKg  opltypes.WeightKg

	Place opltypes.Place

	Points Points

	Tested  bool
	Country opltypes.Country
	State   opltypes.State

	// EntryDate overrides Meet.Date for bodyweight-change checks, but
	// never for LifterMap bucket ordering (invariant 6).
	EntryDate opltypes.Date
}

// HighestSquatKg, HighestBenchKg, and HighestDeadliftKg are the
// strongest successful attempt for a lift, used by the Squat/Bench/
// Deadlift comparators. They equal Best3 under the current ingest
// format but are named separately because the "highest attempt" and
// "best of the scored first three" diverge once a fourth attempt
// record is introduced.
func (e *Entry) HighestSquatKg() opltypes.WeightKg    { return e.Squat.Best3 }
func (e *Entry) HighestBenchKg() opltypes.WeightKg    { return e.Bench.Best3 }
func (e *Entry) HighestDeadliftKg() opltypes.WeightKg { return e.Deadlift.Best3 }
