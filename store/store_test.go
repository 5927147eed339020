package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

func TestAddLifterAssignsDenseIDsAndRejectsDuplicateUsername(t *testing.T) {
	s := store.New(2, 0, 0)

	id1, err := s.AddLifter(store.Lifter{Username: "johndoe", Name: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, store.LifterID(0), id1)

	id2, err := s.AddLifter(store.Lifter{Username: "janedoe", Name: "Jane Doe"})
	require.NoError(t, err)
	assert.Equal(t, store.LifterID(1), id2)

	_, err = s.AddLifter(store.Lifter{Username: "johndoe", Name: "John Impostor"})
	assert.Error(t, err)

	assert.Equal(t, 2, s.NumLifters())
}

func TestAddMeetRejectsDuplicatePath(t *testing.T) {
	s := store.New(0, 1, 0)
	_, err := s.AddMeet(store.Meet{Path: "uspa/1234"})
	require.NoError(t, err)

	_, err = s.AddMeet(store.Meet{Path: "uspa/1234"})
	assert.Error(t, err)
}

func TestEntriesForLifterSortedByMeetDate(t *testing.T) {
	s := store.New(1, 3, 3)
	lifterID, err := s.AddLifter(store.Lifter{Username: "johndoe", Name: "John Doe"})
	require.NoError(t, err)

	late, err := s.AddMeet(store.Meet{Path: "uspa/late", Date: mustDate(t, "2023-06-01")})
	require.NoError(t, err)
	early, err := s.AddMeet(store.Meet{Path: "uspa/early", Date: mustDate(t, "2021-01-01")})
	require.NoError(t, err)
	mid, err := s.AddMeet(store.Meet{Path: "uspa/mid", Date: mustDate(t, "2022-03-15")})
	require.NoError(t, err)

	lateEntry := s.AddEntry(store.Entry{LifterID: lifterID, MeetID: late})
	earlyEntry := s.AddEntry(store.Entry{LifterID: lifterID, MeetID: early})
	midEntry := s.AddEntry(store.Entry{LifterID: lifterID, MeetID: mid})

	s.SortLifterMap()
	s.Freeze()

	assert.Equal(t, []store.EntryID{earlyEntry, midEntry, lateEntry}, s.EntriesForLifter(lifterID))
}

func TestComputeNumUniqueLiftersCountsDistinctLifters(t *testing.T) {
	s := store.New(2, 1, 3)
	l1, err := s.AddLifter(store.Lifter{Username: "a", Name: "A"})
	require.NoError(t, err)
	l2, err := s.AddLifter(store.Lifter{Username: "b", Name: "B"})
	require.NoError(t, err)
	meetID, err := s.AddMeet(store.Meet{Path: "uspa/1"})
	require.NoError(t, err)

	s.AddEntry(store.Entry{LifterID: l1, MeetID: meetID})
	s.AddEntry(store.Entry{LifterID: l1, MeetID: meetID})
	s.AddEntry(store.Entry{LifterID: l2, MeetID: meetID})

	s.ComputeNumUniqueLifters()
	s.Freeze()

	assert.Equal(t, 2, s.Meet(meetID).NumUniqueLifters)
}

func TestMutationAfterFreezePanics(t *testing.T) {
	s := store.New(0, 0, 0)
	s.Freeze()
	assert.Panics(t, func() {
		s.AddEntry(store.Entry{})
	})
}

func mustDate(t *testing.T, s string) opltypes.Date {
	t.Helper()
	d, err := opltypes.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}
