package deploy

import (
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

// NameParameterOverrides exposes a generated name set to a .bicepparam
// entrypoint as a single `resourceNames` object parameter, so the checked-in
// parameter files never carry hand-maintained resource names.
func NameParameterOverrides(names naming.NameSet) map[string]any {
	return map[string]any{
		"resourceNames": map[string]string(names),
	}
}

// ARMParameters wraps plain parameter values in the {"value": ...} envelope
// the deployments API expects when a raw template is deployed without a
// compiled parameter document.
func ARMParameters(values map[string]any) map[string]any {
	parameters := make(map[string]any, len(values))
	for name, value := range values {
		parameters[name] = map[string]any{"value": value}
	}
	return parameters
}
