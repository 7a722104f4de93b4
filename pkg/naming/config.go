package naming

import (
	"errors"
	"fmt"
)

// NamingConfig is the input record for name generation. All names derive from
// these six fields and nothing else, so generation is referentially transparent.
type NamingConfig struct {
	// RegionAbbreviation selects both the short region code embedded in most
	// names and the full region name embedded in resource group names.
	RegionAbbreviation string `json:"regionAbbreviation"`
	// Environment is one of dev, qa, prod.
	Environment string `json:"environment"`
	// WorkloadName identifies the workload, 2-10 characters.
	WorkloadName string `json:"workloadName"`
	// UniqueSuffix is appended to globally-unique resource names (storage
	// accounts, web apps, ...). Optional, at most 13 characters.
	UniqueSuffix string `json:"uniqueSuffix,omitempty"`
	// OrgPrefix is prepended to every generated name. Optional, at most 5
	// characters.
	OrgPrefix string `json:"orgPrefix,omitempty"`
	// Instance numbers multi-instance resources, 1-999. Zero means unset and
	// defaults to 1.
	Instance int `json:"instance,omitempty"`
}

const (
	EnvironmentDev  = "dev"
	EnvironmentQA   = "qa"
	EnvironmentProd = "prod"
)

const (
	minWorkloadNameLength = 2
	maxWorkloadNameLength = 10
	maxUniqueSuffixLength = 13
	maxOrgPrefixLength    = 5
	minInstance           = 1
	maxInstance           = 999
)

// ConfigurationError reports a NamingConfig field that violates its constraint.
// Generation never proceeds with a malformed config: a name that is rejected
// here would otherwise fail much later, at ARM apply time, with a less clear
// error.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid naming configuration: %s: %s", e.Field, e.Message)
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// DefaultConfig returns a config with the documented defaults pre-applied.
// Loaders unmarshal user input over this value, so an absent instance field
// defaults to 1 while an explicit zero still fails validation.
func DefaultConfig() NamingConfig {
	return NamingConfig{Instance: 1}
}

// Validate checks every field constraint and returns the first violation as a
// ConfigurationError.
func (c NamingConfig) Validate() error {
	if _, ok := regionFullNames[c.RegionAbbreviation]; !ok {
		return &ConfigurationError{
			Field:   "regionAbbreviation",
			Message: fmt.Sprintf("%q is not a known region abbreviation, must be one of %v", c.RegionAbbreviation, RegionAbbreviations()),
		}
	}
	switch c.Environment {
	case EnvironmentDev, EnvironmentQA, EnvironmentProd:
	default:
		return &ConfigurationError{
			Field:   "environment",
			Message: fmt.Sprintf("%q is not a known environment, must be one of [dev qa prod]", c.Environment),
		}
	}
	if len(c.WorkloadName) < minWorkloadNameLength || len(c.WorkloadName) > maxWorkloadNameLength {
		return &ConfigurationError{
			Field:   "workloadName",
			Message: fmt.Sprintf("length must be between %d and %d characters, got %d", minWorkloadNameLength, maxWorkloadNameLength, len(c.WorkloadName)),
		}
	}
	if len(c.UniqueSuffix) > maxUniqueSuffixLength {
		return &ConfigurationError{
			Field:   "uniqueSuffix",
			Message: fmt.Sprintf("length must be at most %d characters, got %d", maxUniqueSuffixLength, len(c.UniqueSuffix)),
		}
	}
	if len(c.OrgPrefix) > maxOrgPrefixLength {
		return &ConfigurationError{
			Field:   "orgPrefix",
			Message: fmt.Sprintf("length must be at most %d characters, got %d", maxOrgPrefixLength, len(c.OrgPrefix)),
		}
	}
	if c.Instance < minInstance || c.Instance > maxInstance {
		return &ConfigurationError{
			Field:   "instance",
			Message: fmt.Sprintf("must be between %d and %d, got %d", minInstance, maxInstance, c.Instance),
		}
	}
	return nil
}
