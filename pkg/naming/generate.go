// Package naming computes the deterministic, Azure-naming-rule-compliant
// resource names used by every template in this repository. Generation is a
// pure function of the NamingConfig: identical inputs always produce
// identical outputs.
package naming

import (
	"fmt"
	"strings"
)

// NameSet maps logical resource-type keys to generated resource names. Every
// entry is computed independently from the same NamingConfig.
type NameSet map[string]string

// Generate produces the full name set for the Azure public cloud.
func Generate(cfg NamingConfig) (NameSet, error) {
	return GenerateForCloud(cfg, PublicCloud)
}

// GenerateForCloud produces the full name set, emitting private DNS zone
// names for the given cloud environment. The config is validated first and a
// ConfigurationError is returned before any name is produced.
func GenerateForCloud(cfg NamingConfig, cloud Cloud) (NameSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	basePrefix := ""
	if cfg.OrgPrefix != "" {
		basePrefix = cfg.OrgPrefix + "-"
	}
	baseName := cfg.WorkloadName
	if cfg.UniqueSuffix != "" {
		baseName = cfg.WorkloadName + "-" + cfg.UniqueSuffix
	}
	instanceFormatted := fmt.Sprintf("%03d", cfg.Instance)
	regionFullName := regionFullNames[cfg.RegionAbbreviation]

	zones := privateDNSZones(cloud)
	names := make(NameSet, len(nameRules)+len(zones))
	for key, rule := range nameRules {
		var parts []string
		switch rule.kind {
		case kindResourceGroup:
			parts = []string{rule.abbreviation, cfg.WorkloadName}
			if rule.qualifier != "" {
				parts = append(parts, rule.qualifier)
			}
			parts = append(parts, cfg.Environment, regionFullName)
		case kindRegional:
			parts = []string{rule.abbreviation, cfg.WorkloadName, cfg.Environment, cfg.RegionAbbreviation}
		case kindInstanced:
			parts = []string{rule.abbreviation, cfg.WorkloadName, cfg.Environment, cfg.RegionAbbreviation, instanceFormatted}
		case kindGlobal:
			parts = []string{rule.abbreviation, baseName, cfg.Environment, cfg.RegionAbbreviation}
		}
		names[key] = applyRule(basePrefix+strings.Join(parts, "-"), rule)
	}
	for key, zone := range zones {
		names[key] = zone
	}
	return names, nil
}
