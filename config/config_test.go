package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name         string
		updateFunc   func(c *Config)
		expectErrMsg string
	}{
		{
			name:         "default config is valid",
			updateFunc:   nil,
			expectErrMsg: "",
		},
		{
			name: "pageSize zero is invalid",
			updateFunc: func(c *Config) {
				c.PageSize = 0
			},
			expectErrMsg: "config: pageSize must be in (0, 100], got 0",
		},
		{
			name: "pageSize over MaxPageSize is invalid",
			updateFunc: func(c *Config) {
				c.PageSize = 101
			},
			expectErrMsg: "config: pageSize must be in (0, 100], got 101",
		},
		{
			name: "recentYearsWindow zero is invalid",
			updateFunc: func(c *Config) {
				c.RecentYearsWindow = 0
			},
			expectErrMsg: "config: recentYearsWindow must be positive, got 0",
		},
		{
			name: "metaFederations entry with empty name is invalid",
			updateFunc: func(c *Config) {
				c.MetaFederations = append(c.MetaFederations, MetaFederationRule{
					Federations: []string{"IPF"},
				})
			},
			expectErrMsg: "config: metaFederations entry has empty name",
		},
		{
			name: "duplicate metaFederations name is invalid",
			updateFunc: func(c *Config) {
				c.MetaFederations = append(c.MetaFederations, MetaFederationRule{
					Name:        "IPFAndAffiliates",
					Federations: []string{"IPF"},
				})
			},
			expectErrMsg: `config: duplicate metaFederations name "IPFAndAffiliates"`,
		},
		{
			name: "metaFederations entry with no federations and not testedOnly is invalid",
			updateFunc: func(c *Config) {
				c.MetaFederations = append(c.MetaFederations, MetaFederationRule{
					Name: "Empty",
				})
			},
			expectErrMsg: `config: metaFederations entry "Empty" has no federations and is not testedOnly`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := Default()
			if tc.updateFunc != nil {
				tc.updateFunc(&config)
			}

			err := config.Validate()
			if tc.expectErrMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.expectErrMsg)
			}
		})
	}
}

func TestApplyOverlay(t *testing.T) {
	base := Default()
	overlay := Config{
		PageSize: 50,
	}
	base.Apply(overlay)

	assert.Equal(t, 50, base.PageSize)
	assert.Equal(t, 15, base.RecentYearsWindow)
	assert.Len(t, base.MetaFederations, 2)
}
