package naming

import "sort"

// regionFullNames maps the short region code used inside resource names to the
// full ARM location name. Resource group names embed the full name, everything
// else the short code.
var regionFullNames = map[string]string{
	"eus":  "eastus",
	"eus2": "eastus2",
	"wus2": "westus2",
	"cus":  "centralus",
}

// RegionAbbreviations returns the supported region abbreviations in sorted
// order, for error messages and flag help text.
func RegionAbbreviations() []string {
	abbreviations := make([]string, 0, len(regionFullNames))
	for abbreviation := range regionFullNames {
		abbreviations = append(abbreviations, abbreviation)
	}
	sort.Strings(abbreviations)
	return abbreviations
}

// RegionFullName resolves a region abbreviation to its full ARM location name.
func RegionFullName(abbreviation string) (string, bool) {
	full, ok := regionFullNames[abbreviation]
	return full, ok
}
