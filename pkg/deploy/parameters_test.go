package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

func TestNameParameterOverrides(t *testing.T) {
	names, err := naming.Generate(naming.NamingConfig{
		RegionAbbreviation: "cus",
		Environment:        "dev",
		WorkloadName:       "webapp",
		Instance:           1,
	})
	require.NoError(t, err)

	overrides := NameParameterOverrides(names)
	resourceNames, ok := overrides["resourceNames"].(map[string]string)
	require.True(t, ok, "resourceNames must be a string map, got %T", overrides["resourceNames"])
	assert.Equal(t, names[naming.KeyVault], resourceNames[naming.KeyVault])
	assert.Len(t, resourceNames, len(names))
}

func TestARMParameters(t *testing.T) {
	parameters := ARMParameters(map[string]any{
		"location": "centralus",
		"skuName":  "S1",
	})
	assert.Equal(t, map[string]any{
		"location": map[string]any{"value": "centralus"},
		"skuName":  map[string]any{"value": "S1"},
	}, parameters)
}
