package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

// Load reads and validates a config file. Documented defaults are applied
// before unmarshalling, so an absent field keeps its default while an explicit
// zero value still fails validation. Relative template paths are resolved
// against the config file's directory.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{
		Naming: naming.DefaultConfig(),
	}
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	if err := cfg.Naming.Validate(); err != nil {
		return nil, err
	}
	if cfg.Deployment.Template != "" && !filepath.IsAbs(cfg.Deployment.Template) {
		cfg.Deployment.Template = filepath.Join(filepath.Dir(path), cfg.Deployment.Template)
	}
	return cfg, nil
}
