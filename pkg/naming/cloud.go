package naming

// Cloud carries the DNS suffixes that vary between Azure cloud environments.
// Private DNS zone names are fixed platform strings parameterized only by
// these suffixes, never by the naming configuration.
type Cloud struct {
	KeyVaultDNSSuffix          string
	StorageDNSSuffix           string
	SQLServerDNSSuffix         string
	WebAppDNSSuffix            string
	ContainerRegistryDNSSuffix string
}

// PublicCloud is the Azure public cloud environment.
var PublicCloud = Cloud{
	KeyVaultDNSSuffix:          "vaultcore.azure.net",
	StorageDNSSuffix:           "core.windows.net",
	SQLServerDNSSuffix:         "database.windows.net",
	WebAppDNSSuffix:            "azurewebsites.net",
	ContainerRegistryDNSSuffix: "azurecr.io",
}

// USGovernmentCloud is the Azure US Government cloud environment.
var USGovernmentCloud = Cloud{
	KeyVaultDNSSuffix:          "vaultcore.usgovcloudapi.net",
	StorageDNSSuffix:           "core.usgovcloudapi.net",
	SQLServerDNSSuffix:         "database.usgovcloudapi.net",
	WebAppDNSSuffix:            "azurewebsites.us",
	ContainerRegistryDNSSuffix: "azurecr.us",
}

func privateDNSZones(cloud Cloud) map[string]string {
	return map[string]string{
		PrivateDNSZoneKeyVault:          "privatelink." + cloud.KeyVaultDNSSuffix,
		PrivateDNSZoneBlob:              "privatelink.blob." + cloud.StorageDNSSuffix,
		PrivateDNSZoneFile:              "privatelink.file." + cloud.StorageDNSSuffix,
		PrivateDNSZoneQueue:             "privatelink.queue." + cloud.StorageDNSSuffix,
		PrivateDNSZoneTable:             "privatelink.table." + cloud.StorageDNSSuffix,
		PrivateDNSZoneSQL:               "privatelink." + cloud.SQLServerDNSSuffix,
		PrivateDNSZoneWebApp:            "privatelink." + cloud.WebAppDNSSuffix,
		PrivateDNSZoneContainerRegistry: "privatelink." + cloud.ContainerRegistryDNSSuffix,
	}
}
