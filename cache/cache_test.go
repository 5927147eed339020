package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/config"
	"github.com/oplcore/oplcore/internal/testfixtures"
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

func TestBuildPanicsOnUnfrozenStore(t *testing.T) {
	assert.Panics(t, func() {
		cache.Build(store.New(0, 0, 0), config.Default())
	})
}

func TestEquipmentBuckets(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	raw, ok := c.Equipment(opltypes.EquipmentRaw)
	require.True(t, ok)
	assert.Equal(t, 4, len(raw))

	single, ok := c.Equipment(opltypes.EquipmentSingle)
	require.True(t, ok)
	assert.Equal(t, 1, len(single))
}

func TestSexBuckets(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	assert.Equal(t, 3, len(c.Sex(opltypes.SexMale)))
	assert.Equal(t, 2, len(c.Sex(opltypes.SexFemale)))
}

func TestYearBuckets(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	y2022, ok := c.Year(2022)
	require.True(t, ok)
	assert.Equal(t, 2, len(y2022))

	y2023, ok := c.Year(2023)
	require.True(t, ok)
	assert.Equal(t, 3, len(y2023))
}

func TestYearBucketsRespectConfiguredWindow(t *testing.T) {
	s := testfixtures.SampleStore()
	cfg := config.Default()
	cfg.RecentYearsWindow = 1
	c := cache.Build(s, cfg)

	_, ok := c.Year(2023)
	assert.True(t, ok)
	_, ok = c.Year(2022)
	assert.False(t, ok)
}

func TestMetaFederationIPFAndAffiliates(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	snu := c.MetaFederation(cache.MetaFederationIPFAndAffiliates)
	assert.NotEmpty(t, snu)
	for _, id := range snu {
		fed := s.Meet(s.Entry(store.EntryID(id)).MeetID).Federation
		assert.True(t, fed == opltypes.FederationIPF || fed == opltypes.FederationUSPA)
	}
}

func TestMetaFederationMembershipFollowsConfig(t *testing.T) {
	s := testfixtures.SampleStore()
	cfg := config.Default()
	cfg.MetaFederations = []config.MetaFederationRule{
		{Name: "IPFAndAffiliates", Federations: []string{"USPA"}},
		{Name: "AllTested", TestedOnly: true},
	}
	c := cache.Build(s, cfg)

	snu := c.MetaFederation(cache.MetaFederationIPFAndAffiliates)
	for _, id := range snu {
		fed := s.Meet(s.Entry(store.EntryID(id)).MeetID).Federation
		assert.Equal(t, opltypes.FederationUSPA, fed)
	}
}

func TestGlobalOrderExcludesNothingWhenAllEntriesValid(t *testing.T) {
	s := testfixtures.SampleStore()
	c := cache.Build(s, config.Default())

	ordered := c.GlobalOrder(cache.OrderByTotal)
	assert.Equal(t, s.NumEntries(), len(ordered))
}
