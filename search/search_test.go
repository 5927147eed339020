package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/internal/testfixtures"
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/search"
	"github.com/oplcore/oplcore/store"
)

func TestFindMatchesUsernameSubstring(t *testing.T) {
	s := testfixtures.SampleStore()
	ranking := s.AllEntryIDs()

	idx := search.Find(s, ranking, 0, "johndoe")
	assert := assert.New(t)
	assert.GreaterOrEqual(idx, 0)
	assert.Equal("johndoe", string(s.Lifter(s.Entry(ranking[idx]).LifterID).Username))
}

func TestFindReturnsNegativeOneWhenNoMatch(t *testing.T) {
	s := testfixtures.SampleStore()
	ranking := s.AllEntryIDs()

	idx := search.Find(s, ranking, 0, "nobodywiththisname")
	assert.Equal(t, -1, idx)
}

func TestFindRespectsStartRow(t *testing.T) {
	s := testfixtures.SampleStore()
	ranking := s.AllEntryIDs()

	first := search.Find(s, ranking, 0, "johndoe")
	skipped := search.Find(s, ranking, first+1, "johndoe")

	// John has two entries in the fixture; searching past the first
	// match should find the second one rather than stopping.
	require.NotEqual(t, -1, skipped)
	assert.Greater(t, skipped, first)
}

// TestFindMatchesUnnormalizedInstagramHandle exercises a handle
// containing punctuation FromName would reject outright; the handle is
// matched in its raw form rather than normalized first.
func TestFindMatchesUnnormalizedInstagramHandle(t *testing.T) {
	s := store.New(1, 1, 1)

	lifter, err := s.AddLifter(store.Lifter{
		Username:  "alifter",
		Name:      "A Lifter",
		Instagram: "official.lifter99",
	})
	require.NoError(t, err)

	meet, err := s.AddMeet(store.Meet{
		Path:       "uspa/2401",
		Federation: opltypes.FederationUSPA,
		Date:       mustTestDate(t, "2024-01-01"),
	})
	require.NoError(t, err)

	s.AddEntry(store.Entry{
		LifterID:     lifter,
		MeetID:       meet,
		Sex:          opltypes.SexMale,
		Equipment:    opltypes.EquipmentRaw,
		BodyweightKg: mustTestWeight(t, "90"),
		TotalKg:      mustTestWeight(t, "500"),
	})

	s.SortLifterMap()
	s.ComputeNumUniqueLifters()
	s.Freeze()

	idx := search.Find(s, s.AllEntryIDs(), 0, "lifter99")
	require.GreaterOrEqual(t, idx, 0)
}

func mustTestDate(t *testing.T, v string) opltypes.Date {
	t.Helper()
	d, err := opltypes.ParseDate(v)
	require.NoError(t, err)
	return d
}

func mustTestWeight(t *testing.T, v string) opltypes.WeightKg {
	t.Helper()
	w, _, err := opltypes.ParseWeightKg(v)
	require.NoError(t, err)
	return w
}
