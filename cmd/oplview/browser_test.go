package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

func TestPointsForOrderSelectsMatchingField(t *testing.T) {
	e := &store.Entry{
		TotalKg: mustWeight(t, "500"),
		Points: store.Points{
			Wilks: opltypes.PointsFromFloat64(450.50),
		},
		Squat: store.Attempts{Best3: mustWeight(t, "200")},
	}

	assert.Equal(t, "450.50", pointsForOrder(cache.OrderByWilks, e).String())
	assert.Equal(t, "200", pointsForOrder(cache.OrderBySquat, e).String())
	assert.Equal(t, "500", pointsForOrder(cache.OrderByTotal, e).String())
}

func mustWeight(t *testing.T, s string) opltypes.WeightKg {
	t.Helper()
	w, _, err := opltypes.ParseWeightKg(s)
	if err != nil {
		t.Fatalf("ParseWeightKg(%q): %v", s, err)
	}
	return w
}

