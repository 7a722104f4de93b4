package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, testCase := range []struct {
		name          string
		mutate        func(*NamingConfig)
		expectedField string
	}{
		{
			name:   "valid config",
			mutate: func(*NamingConfig) {},
		},
		{
			name:          "unknown region",
			mutate:        func(c *NamingConfig) { c.RegionAbbreviation = "neu" },
			expectedField: "regionAbbreviation",
		},
		{
			name:          "empty region",
			mutate:        func(c *NamingConfig) { c.RegionAbbreviation = "" },
			expectedField: "regionAbbreviation",
		},
		{
			name:          "unknown environment",
			mutate:        func(c *NamingConfig) { c.Environment = "staging" },
			expectedField: "environment",
		},
		{
			name:   "workload name at lower bound",
			mutate: func(c *NamingConfig) { c.WorkloadName = "ab" },
		},
		{
			name:   "workload name at upper bound",
			mutate: func(c *NamingConfig) { c.WorkloadName = strings.Repeat("a", 10) },
		},
		{
			name:          "workload name too short",
			mutate:        func(c *NamingConfig) { c.WorkloadName = "a" },
			expectedField: "workloadName",
		},
		{
			name:          "workload name too long",
			mutate:        func(c *NamingConfig) { c.WorkloadName = strings.Repeat("a", 11) },
			expectedField: "workloadName",
		},
		{
			name:   "unique suffix at upper bound",
			mutate: func(c *NamingConfig) { c.UniqueSuffix = strings.Repeat("s", 13) },
		},
		{
			name:          "unique suffix too long",
			mutate:        func(c *NamingConfig) { c.UniqueSuffix = strings.Repeat("s", 14) },
			expectedField: "uniqueSuffix",
		},
		{
			name:   "org prefix at upper bound",
			mutate: func(c *NamingConfig) { c.OrgPrefix = "abcde" },
		},
		{
			name:          "org prefix too long",
			mutate:        func(c *NamingConfig) { c.OrgPrefix = "abcdef" },
			expectedField: "orgPrefix",
		},
		{
			name:   "instance at lower bound",
			mutate: func(c *NamingConfig) { c.Instance = 1 },
		},
		{
			name:   "instance at upper bound",
			mutate: func(c *NamingConfig) { c.Instance = 999 },
		},
		{
			name:          "instance zero",
			mutate:        func(c *NamingConfig) { c.Instance = 0 },
			expectedField: "instance",
		},
		{
			name:          "instance too large",
			mutate:        func(c *NamingConfig) { c.Instance = 1000 },
			expectedField: "instance",
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := validConfig()
			testCase.mutate(&cfg)
			err := cfg.Validate()
			if testCase.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected a ConfigurationError, got %T", err)
			assert.Equal(t, testCase.expectedField, cfgErr.Field)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Instance)
}

func TestRegionFullName(t *testing.T) {
	full, ok := RegionFullName("cus")
	require.True(t, ok)
	assert.Equal(t, "centralus", full)

	_, ok = RegionFullName("neu")
	assert.False(t, ok)
}
