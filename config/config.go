// Package config loads and validates the engine's global configuration:
// the MetaFederation catalog, which calendar years get a dedicated
// cache slice, and the default rankings page size. Unlike a per-file
// editor config, this configuration is process-global — one value
// shared by the whole frozen store, not resolved per request.
package config

import "fmt"

// DefaultPageSize is the rankings window size used when a caller does
// not specify one explicitly.
const DefaultPageSize = 20

// MaxPageSize matches query.MaxWindow; duplicated here (rather than
// importing query) so config has no dependency on the query engine it
// configures.
const MaxPageSize = 100

// MetaFederationRule declares one named MetaFederation grouping,
// configurable so a deployment can add affiliates without a code
// change.
type MetaFederationRule struct {
	Name        string   `yaml:"name"`
	Federations []string `yaml:"federations"`
	TestedOnly  bool     `yaml:"testedOnly"`
}

// Config is the engine's global configuration.
type Config struct {
	PageSize          int                  `yaml:"pageSize"`
	RecentYearsWindow int                  `yaml:"recentYearsWindow"`
	MetaFederations   []MetaFederationRule `yaml:"metaFederations"`
}

// Default constructs a Config with default values: a 20-row page size,
// a 15-year cache window, and the built-in IPFAndAffiliates/AllTested
// meta-federations.
func Default() Config {
	return Config{
		PageSize:          DefaultPageSize,
		RecentYearsWindow: 15,
		MetaFederations: []MetaFederationRule{
			{Name: "IPFAndAffiliates", Federations: []string{"IPF", "USAPL", "USPA"}},
			{Name: "AllTested", TestedOnly: true},
		},
	}
}

// Validate checks the configuration's invariants: a positive page size
// that does not exceed MaxPageSize, a positive cache window, and
// unique, non-empty meta-federation names.
func (c Config) Validate() error {
	if c.PageSize <= 0 || c.PageSize > MaxPageSize {
		return fmt.Errorf("config: pageSize must be in (0, %d], got %d", MaxPageSize, c.PageSize)
	}
	if c.RecentYearsWindow <= 0 {
		return fmt.Errorf("config: recentYearsWindow must be positive, got %d", c.RecentYearsWindow)
	}

	seen := make(map[string]struct{}, len(c.MetaFederations))
	for _, mf := range c.MetaFederations {
		if mf.Name == "" {
			return fmt.Errorf("config: metaFederations entry has empty name")
		}
		if _, dup := seen[mf.Name]; dup {
			return fmt.Errorf("config: duplicate metaFederations name %q", mf.Name)
		}
		seen[mf.Name] = struct{}{}
		if !mf.TestedOnly && len(mf.Federations) == 0 {
			return fmt.Errorf("config: metaFederations entry %q has no federations and is not testedOnly", mf.Name)
		}
	}
	return nil
}

// Apply overrides the base config's values with an overlay's non-zero
// values, the same shallow-override policy as aretext's editor Config.
// An overlay MetaFederation rule replaces the base rule of the same
// name; rules with new names are appended.
func (c *Config) Apply(overlay Config) {
	if overlay.PageSize > 0 {
		c.PageSize = overlay.PageSize
	}
	if overlay.RecentYearsWindow > 0 {
		c.RecentYearsWindow = overlay.RecentYearsWindow
	}
	if len(overlay.MetaFederations) > 0 {
		overridden := make(map[string]struct{}, len(overlay.MetaFederations))
		for _, rule := range overlay.MetaFederations {
			overridden[rule.Name] = struct{}{}
		}
		kept := make([]MetaFederationRule, 0, len(c.MetaFederations))
		for _, rule := range c.MetaFederations {
			if _, ok := overridden[rule.Name]; !ok {
				kept = append(kept, rule)
			}
		}
		merged := MergeRecursive(kept, overlay.MetaFederations)
		c.MetaFederations = merged.([]MetaFederationRule)
	}
}
