// Package query composes a RankingsQuery into a filtered, sorted,
// per-lifter-uniqued ranking by intersecting cached SNUs from the
// cache package and applying the residual predicates the cache does
// not precompute.
package query

import (
	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/opltypes"
)

// FederationFilter selects entries by federation, either unconstrained,
// a single named federation, or a MetaFederation grouping.
type FederationFilter struct {
	Any            bool
	Federation     opltypes.Federation
	MetaFederation cache.MetaFederation
	UseMeta        bool
}

// AnyFederation is the "no constraint on this axis" value.
var AnyFederation = FederationFilter{Any: true}

// Filter is the set of independent axes a ranking query constrains.
// The zero value of each field means "no constraint on that axis"
// except where a dedicated Any flag exists (Equipment, Federation, Sex,
// Year, State).
type Filter struct {
	Equipment     opltypes.Equipment
	AnyEquipment  bool

	Federation FederationFilter

	WeightClass opltypes.WeightClassKg

	Sex    opltypes.Sex
	AnySex bool

	AgeClass    opltypes.AgeClass

	Year    int
	AnyYear bool

	Event cache.EventFilter

	State       opltypes.State
	AnyState    bool
}

// Default returns a Filter with every axis unconstrained.
func Default() Filter {
	return Filter{
		AnyEquipment: true,
		Federation:   AnyFederation,
		AnySex:       true,
		AnyYear:      true,
		Event:        cache.EventFilterAll,
		AnyState:     true,
	}
}
