package opltypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/opltypes"
)

func TestParseWeightKgRoundTripsThroughString(t *testing.T) {
	w, ok, err := opltypes.ParseWeightKg("140.5")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "140.5", w.String())

	w, ok, err = opltypes.ParseWeightKg("140")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "140", w.String())
}

func TestParseWeightKgEmptyIsZeroAndNotOk(t *testing.T) {
	w, ok, err := opltypes.ParseWeightKg("")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, w.IsZero())
}

func TestPointsStringAlwaysShowsTwoDecimals(t *testing.T) {
	assert.Equal(t, "0.00", opltypes.ZeroPoints.String())
	assert.Equal(t, "400.50", opltypes.PointsFromFloat64(400.5).String())
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	_, err := opltypes.ParseDate("2022/03/01")
	assert.Error(t, err)

	d, err := opltypes.ParseDate("2022-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2022, d.Year())
	assert.Equal(t, 3, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2022-03-01", d.String())
}

func TestDateOrdersChronologically(t *testing.T) {
	early, err := opltypes.ParseDate("2022-01-01")
	require.NoError(t, err)
	late, err := opltypes.ParseDate("2023-01-01")
	require.NoError(t, err)
	assert.Less(t, early, late)
}

func TestParseAgeDistinguishesExactFromApproximate(t *testing.T) {
	exact, err := opltypes.ParseAge("23")
	require.NoError(t, err)
	assert.Equal(t, opltypes.AgeExact, exact.Kind)
	assert.Equal(t, "23", exact.String())

	approx, err := opltypes.ParseAge("23.5")
	require.NoError(t, err)
	assert.Equal(t, opltypes.AgeApproximate, approx.Kind)
	assert.Equal(t, "23.5", approx.String())

	none, err := opltypes.ParseAge("")
	require.NoError(t, err)
	assert.False(t, none.IsKnown())
}

func TestParsePlaceIsDQMatchesDisqualificationClasses(t *testing.T) {
	dq, err := opltypes.ParsePlace("DQ")
	require.NoError(t, err)
	assert.True(t, dq.IsDQ())

	ranked, err := opltypes.ParsePlace("1")
	require.NoError(t, err)
	assert.False(t, ranked.IsDQ())
	assert.Equal(t, "1", ranked.String())
}

func TestFromNameNormalizesToLowercaseASCIIUsername(t *testing.T) {
	u, err := opltypes.FromName("Dan Green")
	require.NoError(t, err)
	assert.Equal(t, opltypes.Username("dangreen"), u)
}

func TestFromNameStripsDiacritics(t *testing.T) {
	u, err := opltypes.FromName("José Ramírez")
	require.NoError(t, err)
	assert.Equal(t, opltypes.Username("joseramirez"), u)
}
