package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() NamingConfig {
	return NamingConfig{
		RegionAbbreviation: "cus",
		Environment:        "dev",
		WorkloadName:       "webapp",
		UniqueSuffix:       "test1234",
		OrgPrefix:          "test",
		Instance:           1,
	}
}

func TestGenerateConcreteScenario(t *testing.T) {
	names, err := Generate(validConfig())
	require.NoError(t, err)

	assert.LessOrEqual(t, len(names[KeyVault]), 24)
	assert.LessOrEqual(t, len(names[StorageAccount]), 24)
	assert.NotContains(t, names[StorageAccount], "-")
	assert.Equal(t, strings.ToLower(names[StorageAccount]), names[StorageAccount])

	for key, name := range names {
		assert.NotEmpty(t, name, "generated name for %s must not be empty", key)
	}
}

func TestGenerateEnforcesPlatformLimits(t *testing.T) {
	// Configs chosen to push assembled names past every cap before truncation.
	for _, testCase := range []struct {
		name   string
		config NamingConfig
	}{
		{
			name:   "short inputs",
			config: NamingConfig{RegionAbbreviation: "eus", Environment: "dev", WorkloadName: "ab", Instance: 1},
		},
		{
			name:   "maximum length inputs",
			config: NamingConfig{RegionAbbreviation: "eus2", Environment: "prod", WorkloadName: "abcdefghij", UniqueSuffix: "abcdefghijklm", OrgPrefix: "abcde", Instance: 999},
		},
		{
			name:   "mixed case workload",
			config: NamingConfig{RegionAbbreviation: "wus2", Environment: "qa", WorkloadName: "WebApp", UniqueSuffix: "X9Y8Z7", OrgPrefix: "Org", Instance: 42},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			names, err := Generate(testCase.config)
			require.NoError(t, err)

			storage := names[StorageAccount]
			assert.LessOrEqual(t, len(storage), 24)
			assert.NotContains(t, storage, "-")
			assert.Equal(t, strings.ToLower(storage), storage)

			assert.LessOrEqual(t, len(names[KeyVault]), 24)

			vmWindows := names[VirtualMachineWindows]
			assert.LessOrEqual(t, len(vmWindows), 15)
			assert.NotContains(t, vmWindows, "-")

			registry := names[ContainerRegistry]
			assert.LessOrEqual(t, len(registry), 50)
			assert.NotContains(t, registry, "-")
			assert.Equal(t, strings.ToLower(registry), registry)

			cosmos := names[CosmosDBAccount]
			assert.LessOrEqual(t, len(cosmos), 44)
			assert.Equal(t, strings.ToLower(cosmos), cosmos)

			for _, key := range []string{ServiceBusNamespace, EventHubNamespace, APIManagement, RecoveryServicesVault, AutomationAccount} {
				assert.LessOrEqual(t, len(names[key]), 50, "name for %s exceeds 50 characters", key)
			}
			assert.LessOrEqual(t, len(names[RedisCache]), 63)
			assert.LessOrEqual(t, len(names[VirtualMachine]), 64)
		})
	}
}

func TestGenerateIsReferentiallyTransparent(t *testing.T) {
	first, err := Generate(validConfig())
	require.NoError(t, err)
	second, err := Generate(validConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResourceGroupUsesFullRegionName(t *testing.T) {
	for abbreviation, fullName := range map[string]string{
		"eus":  "eastus",
		"eus2": "eastus2",
		"wus2": "westus2",
		"cus":  "centralus",
	} {
		t.Run(abbreviation, func(t *testing.T) {
			cfg := validConfig()
			cfg.RegionAbbreviation = abbreviation
			names, err := Generate(cfg)
			require.NoError(t, err)
			for _, key := range []string{ResourceGroupGeneral, ResourceGroupNetwork, ResourceGroupMonitoring} {
				assert.Contains(t, names[key], fullName)
			}
		})
	}
}

func TestInstanceFormatting(t *testing.T) {
	for _, testCase := range []struct {
		instance int
		suffix   string
	}{
		{instance: 1, suffix: "-001"},
		{instance: 42, suffix: "-042"},
		{instance: 999, suffix: "-999"},
	} {
		cfg := validConfig()
		cfg.Instance = testCase.instance
		names, err := Generate(cfg)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(names[VirtualMachine], testCase.suffix), "expected %q to end with %q", names[VirtualMachine], testCase.suffix)
		assert.True(t, strings.HasSuffix(names[NetworkInterface], testCase.suffix), "expected %q to end with %q", names[NetworkInterface], testCase.suffix)
	}
}

func TestOptionalFieldsOmitted(t *testing.T) {
	cfg := NamingConfig{
		RegionAbbreviation: "eus",
		Environment:        "prod",
		WorkloadName:       "payroll",
		Instance:           1,
	}
	names, err := Generate(cfg)
	require.NoError(t, err)

	// No org prefix: names start with the type abbreviation.
	assert.True(t, strings.HasPrefix(names[VirtualNetwork], "vnet-"), "got %q", names[VirtualNetwork])
	// No unique suffix: globally-unique names fall back to the workload name.
	assert.Equal(t, "app-payroll-prod-eus", names[WebApp])
	assert.Equal(t, "rg-payroll-prod-eastus", names[ResourceGroupGeneral])
}

func TestPrivateDNSZonesAreFixed(t *testing.T) {
	names, err := Generate(validConfig())
	require.NoError(t, err)

	assert.Equal(t, "privatelink.vaultcore.azure.net", names[PrivateDNSZoneKeyVault])
	assert.Equal(t, "privatelink.blob.core.windows.net", names[PrivateDNSZoneBlob])
	assert.Equal(t, "privatelink.database.windows.net", names[PrivateDNSZoneSQL])
	assert.Equal(t, "privatelink.azurewebsites.net", names[PrivateDNSZoneWebApp])
	assert.Equal(t, "privatelink.azurecr.io", names[PrivateDNSZoneContainerRegistry])

	// A different naming config never changes the zone names.
	other, err := Generate(NamingConfig{RegionAbbreviation: "wus2", Environment: "qa", WorkloadName: "other", Instance: 7})
	require.NoError(t, err)
	assert.Equal(t, names[PrivateDNSZoneKeyVault], other[PrivateDNSZoneKeyVault])
}

func TestGenerateForCloudUsesCloudSuffixes(t *testing.T) {
	names, err := GenerateForCloud(validConfig(), USGovernmentCloud)
	require.NoError(t, err)
	assert.Equal(t, "privatelink.vaultcore.usgovcloudapi.net", names[PrivateDNSZoneKeyVault])
	assert.Equal(t, "privatelink.blob.core.usgovcloudapi.net", names[PrivateDNSZoneBlob])
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.RegionAbbreviation = "neu"
	_, err := Generate(cfg)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}
