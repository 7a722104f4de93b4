package config

import (
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

// Config is the single YAML document driving the tooling: the naming inputs
// plus the optional deployment settings.
type Config struct {
	Naming     naming.NamingConfig `json:"naming"`
	Deployment DeploymentConfig    `json:"deployment,omitempty"`
}

// DeploymentConfig holds everything needed to drive an ARM deployment of the
// repository's Bicep entrypoint.
type DeploymentConfig struct {
	// SubscriptionID is the target subscription.
	SubscriptionID string `json:"subscriptionID,omitempty"`
	// Template is the path to the .bicep or .bicepparam entrypoint, relative
	// to the config file.
	Template string `json:"template,omitempty"`
	// DeploymentName overrides the generated ARM deployment name.
	DeploymentName string `json:"deploymentName,omitempty"`
}
