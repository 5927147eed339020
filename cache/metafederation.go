package cache

import (
	"github.com/oplcore/oplcore/config"
	"github.com/oplcore/oplcore/opltypes"
)

// MetaFederation is a named grouping of federations whose membership
// predicate may depend on both the entry and the meet (e.g. "tested
// only" depends on Entry.Tested, not just Meet.Federation). Ordinary
// filters resolve to one real Federation; MetaFederation filters
// resolve to a union across several.
type MetaFederation uint8

const (
	MetaFederationIPFAndAffiliates MetaFederation = iota
	MetaFederationAllTested
	MetaFederationAll
)

// AllMetaFederations lists every MetaFederation the cache materializes
// a membership SNU for.
var AllMetaFederations = []MetaFederation{
	MetaFederationIPFAndAffiliates,
	MetaFederationAllTested,
	MetaFederationAll,
}

func (m MetaFederation) String() string {
	switch m {
	case MetaFederationIPFAndAffiliates:
		return "IPFAndAffiliates"
	case MetaFederationAllTested:
		return "AllTested"
	case MetaFederationAll:
		return "All"
	default:
		return "Unknown"
	}
}

// metaFederationRule is the resolved, typed form of a
// config.MetaFederationRule: federation names parsed to opltypes.Federation
// values, ready for a membership predicate.
type metaFederationRule struct {
	federations map[opltypes.Federation]struct{}
	testedOnly  bool
}

// resolveMetaFederationRules maps each built-in MetaFederation to the
// config rule with the matching name, falling back to "every meet
// matches" for MetaFederationAll (which has no config entry) and for
// any built-in whose name is absent from cfg.MetaFederations.
// Federation names that don't parse are skipped rather than rejected,
// since Config.Validate does not itself check federation spelling.
func resolveMetaFederationRules(cfg config.Config) map[MetaFederation]metaFederationRule {
	byName := make(map[string]config.MetaFederationRule, len(cfg.MetaFederations))
	for _, rule := range cfg.MetaFederations {
		byName[rule.Name] = rule
	}

	resolved := make(map[MetaFederation]metaFederationRule, len(AllMetaFederations))
	for _, mf := range AllMetaFederations {
		rule, ok := byName[mf.String()]
		if !ok {
			resolved[mf] = metaFederationRule{}
			continue
		}
		federations := make(map[opltypes.Federation]struct{}, len(rule.Federations))
		for _, name := range rule.Federations {
			fed, err := opltypes.ParseFederation(name)
			if err != nil {
				continue
			}
			federations[fed] = struct{}{}
		}
		resolved[mf] = metaFederationRule{federations: federations, testedOnly: rule.TestedOnly}
	}
	return resolved
}

// membershipPredicate returns the (entry, meet-federation) predicate
// for one resolved metaFederationRule. Tested-only depends on the
// per-entry Tested flag rather than Federation, since a single
// federation may run both tested and untested divisions within the
// same meet. A rule with neither a federation set nor testedOnly set
// (MetaFederationAll, or an unconfigured name) matches everything.
func membershipPredicate(rule metaFederationRule) func(federation opltypes.Federation, tested bool) bool {
	if rule.testedOnly {
		return func(federation opltypes.Federation, tested bool) bool {
			return tested
		}
	}
	if len(rule.federations) > 0 {
		return func(federation opltypes.Federation, tested bool) bool {
			_, ok := rule.federations[federation]
			return ok
		}
	}
	return func(federation opltypes.Federation, tested bool) bool {
		return true
	}
}
