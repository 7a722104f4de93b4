package naming

import "strings"

// Logical resource-type keys. The values double as the keys of the generated
// NameSet, so they marshal cleanly into Bicep parameter files.
const (
	ResourceGroupGeneral    = "resourceGroupGeneral"
	ResourceGroupNetwork    = "resourceGroupNetwork"
	ResourceGroupMonitoring = "resourceGroupMonitoring"

	VirtualNetwork           = "virtualNetwork"
	Subnet                   = "subnet"
	NetworkSecurityGroup     = "networkSecurityGroup"
	RouteTable               = "routeTable"
	NATGateway               = "natGateway"
	BastionHost              = "bastionHost"
	AzureFirewall            = "azureFirewall"
	ApplicationGateway       = "applicationGateway"
	LoadBalancerInternal     = "loadBalancerInternal"
	LoadBalancerExternal     = "loadBalancerExternal"
	VirtualNetworkGateway    = "virtualNetworkGateway"
	LocalNetworkGateway      = "localNetworkGateway"
	ExpressRouteCircuit      = "expressRouteCircuit"
	PrivateEndpoint          = "privateEndpoint"
	PrivateLinkService       = "privateLinkService"
	NetworkWatcher           = "networkWatcher"
	LogAnalyticsWorkspace    = "logAnalyticsWorkspace"
	ApplicationInsights      = "applicationInsights"
	AppServicePlan           = "appServicePlan"
	ManagedIdentity          = "managedIdentity"
	AKSCluster               = "aksCluster"
	SQLDatabase              = "sqlDatabase"
	EventGridTopic           = "eventGridTopic"
	MachineLearningWorkspace = "machineLearningWorkspace"

	VirtualMachine         = "virtualMachine"
	VirtualMachineWindows  = "virtualMachineWindows"
	VirtualMachineScaleSet = "virtualMachineScaleSet"
	AvailabilitySet        = "availabilitySet"
	NetworkInterface       = "networkInterface"
	OSDisk                 = "osDisk"
	DataDisk               = "dataDisk"
	PublicIP               = "publicIP"

	StorageAccount            = "storageAccount"
	StorageAccountDiagnostics = "storageAccountDiagnostics"
	KeyVault                  = "keyVault"
	ContainerRegistry         = "containerRegistry"
	CosmosDBAccount           = "cosmosDbAccount"
	ServiceBusNamespace       = "serviceBusNamespace"
	EventHubNamespace         = "eventHubNamespace"
	APIManagement             = "apiManagement"
	RecoveryServicesVault     = "recoveryServicesVault"
	AutomationAccount         = "automationAccount"
	RedisCache                = "redisCache"
	WebApp                    = "webApp"
	FunctionApp               = "functionApp"
	StaticWebApp              = "staticWebApp"
	SQLServer                 = "sqlServer"
	FrontDoorProfile          = "frontDoorProfile"
	TrafficManagerProfile     = "trafficManagerProfile"
	CDNProfile                = "cdnProfile"
	SignalR                   = "signalR"
	ContainerAppsEnvironment  = "containerAppsEnvironment"
	ContainerApp              = "containerApp"

	PrivateDNSZoneKeyVault          = "privateDnsZoneKeyVault"
	PrivateDNSZoneBlob              = "privateDnsZoneBlob"
	PrivateDNSZoneFile              = "privateDnsZoneFile"
	PrivateDNSZoneQueue             = "privateDnsZoneQueue"
	PrivateDNSZoneTable             = "privateDnsZoneTable"
	PrivateDNSZoneSQL               = "privateDnsZoneSql"
	PrivateDNSZoneWebApp            = "privateDnsZoneWebApp"
	PrivateDNSZoneContainerRegistry = "privateDnsZoneContainerRegistry"
)

type nameKind int

const (
	// kindResourceGroup embeds the full region name. Resource groups are
	// long-lived and should be readable without a region lookup table.
	kindResourceGroup nameKind = iota
	// kindRegional embeds the region abbreviation and the plain workload name.
	kindRegional
	// kindInstanced is kindRegional plus a zero-padded instance number.
	kindInstanced
	// kindGlobal uses the workload name plus the unique suffix, for resource
	// types whose names must be unique across all of Azure.
	kindGlobal
)

type nameRule struct {
	abbreviation string
	kind         nameKind
	// qualifier distinguishes sibling resource groups of one workload.
	qualifier string
	// maxLength of 0 means the type has no enforced cap.
	maxLength    int
	stripHyphens bool
	lowercase    bool
}

// nameRules is the per-resource-type template and constraint table. Length
// caps and charset restrictions are Azure platform limits, not conventions,
// and must not be relaxed.
var nameRules = map[string]nameRule{
	ResourceGroupGeneral:    {abbreviation: "rg", kind: kindResourceGroup},
	ResourceGroupNetwork:    {abbreviation: "rg", kind: kindResourceGroup, qualifier: "network"},
	ResourceGroupMonitoring: {abbreviation: "rg", kind: kindResourceGroup, qualifier: "monitoring"},

	VirtualNetwork:           {abbreviation: "vnet", kind: kindRegional},
	Subnet:                   {abbreviation: "snet", kind: kindRegional},
	NetworkSecurityGroup:     {abbreviation: "nsg", kind: kindRegional},
	RouteTable:               {abbreviation: "rt", kind: kindRegional},
	NATGateway:               {abbreviation: "ng", kind: kindRegional},
	BastionHost:              {abbreviation: "bas", kind: kindRegional},
	AzureFirewall:            {abbreviation: "afw", kind: kindRegional},
	ApplicationGateway:       {abbreviation: "agw", kind: kindRegional},
	LoadBalancerInternal:     {abbreviation: "lbi", kind: kindRegional},
	LoadBalancerExternal:     {abbreviation: "lbe", kind: kindRegional},
	VirtualNetworkGateway:    {abbreviation: "vgw", kind: kindRegional},
	LocalNetworkGateway:      {abbreviation: "lgw", kind: kindRegional},
	ExpressRouteCircuit:      {abbreviation: "erc", kind: kindRegional},
	PrivateEndpoint:          {abbreviation: "pep", kind: kindRegional},
	PrivateLinkService:       {abbreviation: "pl", kind: kindRegional},
	NetworkWatcher:           {abbreviation: "nw", kind: kindRegional},
	LogAnalyticsWorkspace:    {abbreviation: "log", kind: kindRegional},
	ApplicationInsights:      {abbreviation: "appi", kind: kindRegional},
	AppServicePlan:           {abbreviation: "asp", kind: kindRegional},
	ManagedIdentity:          {abbreviation: "id", kind: kindRegional},
	AKSCluster:               {abbreviation: "aks", kind: kindRegional},
	SQLDatabase:              {abbreviation: "sqldb", kind: kindRegional},
	EventGridTopic:           {abbreviation: "evgt", kind: kindRegional},
	MachineLearningWorkspace: {abbreviation: "mlw", kind: kindRegional},

	VirtualMachine:         {abbreviation: "vm", kind: kindInstanced, maxLength: 64},
	VirtualMachineWindows:  {abbreviation: "vm", kind: kindInstanced, maxLength: 15, stripHyphens: true},
	VirtualMachineScaleSet: {abbreviation: "vmss", kind: kindInstanced},
	AvailabilitySet:        {abbreviation: "avail", kind: kindInstanced},
	NetworkInterface:       {abbreviation: "nic", kind: kindInstanced},
	OSDisk:                 {abbreviation: "osdisk", kind: kindInstanced},
	DataDisk:               {abbreviation: "disk", kind: kindInstanced},
	PublicIP:               {abbreviation: "pip", kind: kindInstanced},

	StorageAccount:            {abbreviation: "st", kind: kindGlobal, maxLength: 24, stripHyphens: true, lowercase: true},
	StorageAccountDiagnostics: {abbreviation: "stdiag", kind: kindGlobal, maxLength: 24, stripHyphens: true, lowercase: true},
	KeyVault:                  {abbreviation: "kv", kind: kindGlobal, maxLength: 24},
	ContainerRegistry:         {abbreviation: "cr", kind: kindGlobal, maxLength: 50, stripHyphens: true, lowercase: true},
	CosmosDBAccount:           {abbreviation: "cosmos", kind: kindGlobal, maxLength: 44, lowercase: true},
	ServiceBusNamespace:       {abbreviation: "sbns", kind: kindGlobal, maxLength: 50},
	EventHubNamespace:         {abbreviation: "evhns", kind: kindGlobal, maxLength: 50},
	APIManagement:             {abbreviation: "apim", kind: kindGlobal, maxLength: 50},
	RecoveryServicesVault:     {abbreviation: "rsv", kind: kindGlobal, maxLength: 50},
	AutomationAccount:         {abbreviation: "aa", kind: kindGlobal, maxLength: 50},
	RedisCache:                {abbreviation: "redis", kind: kindGlobal, maxLength: 63},
	WebApp:                    {abbreviation: "app", kind: kindGlobal},
	FunctionApp:               {abbreviation: "func", kind: kindGlobal},
	StaticWebApp:              {abbreviation: "stapp", kind: kindGlobal},
	SQLServer:                 {abbreviation: "sql", kind: kindGlobal},
	FrontDoorProfile:          {abbreviation: "afd", kind: kindGlobal},
	TrafficManagerProfile:     {abbreviation: "traf", kind: kindGlobal},
	CDNProfile:                {abbreviation: "cdnp", kind: kindGlobal},
	SignalR:                   {abbreviation: "sigr", kind: kindGlobal},
	ContainerAppsEnvironment:  {abbreviation: "cae", kind: kindGlobal},
	ContainerApp:              {abbreviation: "ca", kind: kindGlobal},
}

// applyRule sanitizes an assembled name: strip hyphens, lowercase, then hard
// truncation, in that order. Truncation is a plain cut of the assembled
// string, so long inputs can collide after the cut; callers that need
// global uniqueness should verify availability before deploying.
func applyRule(name string, rule nameRule) string {
	if rule.stripHyphens {
		name = strings.ReplaceAll(name, "-", "")
	}
	if rule.lowercase {
		name = strings.ToLower(name)
	}
	if rule.maxLength > 0 && len(name) > rule.maxLength {
		name = name[:rule.maxLength]
	}
	return name
}
