package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/config"
	"github.com/oplcore/oplcore/internal/testfixtures"
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/query"
	"github.com/oplcore/oplcore/store"
)

func mustDate(t *testing.T, s string) opltypes.Date {
	t.Helper()
	d, err := opltypes.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustWeight(t *testing.T, s string) opltypes.WeightKg {
	t.Helper()
	w, _, err := opltypes.ParseWeightKg(s)
	require.NoError(t, err)
	return w
}

func mustPlace(t *testing.T, s string) opltypes.Place {
	t.Helper()
	p, err := opltypes.ParsePlace(s)
	require.NoError(t, err)
	return p
}

func TestQueryDefaultFilterOrdersByTotalDescending(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	q := query.RankingsQuery{Filter: query.Default(), OrderBy: cache.OrderByTotal}
	ranking := query.Query(s, c, q, 0, 10)

	// Five entries, but each lifter is uniqued to their best total, so
	// three rows (john's 650 beats his 600).
	assert.Equal(t, 3, ranking.TotalLength)
	assert.Len(t, ranking.EntryIDs, 3)

	var totals []string
	for _, id := range ranking.EntryIDs {
		totals = append(totals, s.Entry(id).TotalKg.String())
	}
	assert.Equal(t, []string{"700", "650", "400"}, totals)
}

func TestQueryFiltersBySex(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	f := query.Default()
	f.AnySex = false
	f.Sex = opltypes.SexFemale

	q := query.RankingsQuery{Filter: f, OrderBy: cache.OrderByTotal}
	ranking := query.Query(s, c, q, 0, 10)

	assert.Equal(t, 1, ranking.TotalLength)
	assert.Equal(t, "janedoe", string(s.Lifter(s.Entry(ranking.EntryIDs[0]).LifterID).Username))
}

func TestQueryFiltersByEquipment(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	f := query.Default()
	f.AnyEquipment = false
	f.Equipment = opltypes.EquipmentSingle

	q := query.RankingsQuery{Filter: f, OrderBy: cache.OrderByTotal}
	ranking := query.Query(s, c, q, 0, 10)

	assert.Equal(t, 1, ranking.TotalLength)
}

func TestQueryWindowPagination(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	q := query.RankingsQuery{Filter: query.Default(), OrderBy: cache.OrderByTotal}

	first := query.Query(s, c, q, 0, 0)
	assert.Len(t, first.EntryIDs, 1)
	assert.Equal(t, 3, first.TotalLength)

	second := query.Query(s, c, q, 1, 1)
	assert.Len(t, second.EntryIDs, 1)
	assert.NotEqual(t, first.EntryIDs[0], second.EntryIDs[0])
}

func TestQueryStartBeyondTotalReturnsEmpty(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	q := query.RankingsQuery{Filter: query.Default(), OrderBy: cache.OrderByTotal}
	ranking := query.Query(s, c, q, 50, 60)

	assert.Empty(t, ranking.EntryIDs)
	assert.Equal(t, 3, ranking.TotalLength)
}

// TestQueryWeightClassFilterExcludesDisqualifiedEntries exercises the
// uncached residual-filter path (a weight class constraint forces a
// linear scan rather than a cached global order) and asserts that a
// DQ'd entry, and an entry with a non-positive primary metric, are
// excluded from the ranking rather than merely sorted last.
func TestQueryWeightClassFilterExcludesDisqualifiedEntries(t *testing.T) {
	s := store.New(2, 1, 3)

	lifterA, err := s.AddLifter(store.Lifter{Username: "alifter", Name: "A Lifter"})
	require.NoError(t, err)
	lifterB, err := s.AddLifter(store.Lifter{Username: "blifter", Name: "B Lifter"})
	require.NoError(t, err)

	meet, err := s.AddMeet(store.Meet{
		Path:       "uspa/2401",
		Federation: opltypes.FederationUSPA,
		Date:       mustDate(t, "2024-01-01"),
	})
	require.NoError(t, err)

	weightClass, err := opltypes.ParseWeightClassKg("90")
	require.NoError(t, err)

	// Legitimate 90kg-class entry: should be the only one returned.
	s.AddEntry(store.Entry{
		LifterID:      lifterA,
		MeetID:        meet,
		Sex:           opltypes.SexMale,
		Equipment:     opltypes.EquipmentRaw,
		BodyweightKg:  mustWeight(t, "88"),
		WeightClassKg: weightClass,
		TotalKg:       mustWeight(t, "500"),
		Place:         mustPlace(t, "1"),
	})
	// Disqualified entry in the same weight class: must be excluded.
	s.AddEntry(store.Entry{
		LifterID:      lifterB,
		MeetID:        meet,
		Sex:           opltypes.SexMale,
		Equipment:     opltypes.EquipmentRaw,
		BodyweightKg:  mustWeight(t, "85"),
		WeightClassKg: weightClass,
		TotalKg:       opltypes.ZeroWeightKg,
		Place:         opltypes.PlaceDQValue,
	})

	s.SortLifterMap()
	s.ComputeNumUniqueLifters()
	s.Freeze()

	c := cache.Build(s, config.Default())
	f := query.Default()
	f.WeightClass = weightClass

	ranking := query.Query(s, c, query.RankingsQuery{Filter: f, OrderBy: cache.OrderByTotal}, 0, 10)
	require.Len(t, ranking.EntryIDs, 1)
	assert.Equal(t, "alifter", string(s.Lifter(s.Entry(ranking.EntryIDs[0]).LifterID).Username))
}
