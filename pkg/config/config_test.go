package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `naming:
  regionAbbreviation: cus
  environment: dev
  workloadName: webapp
  uniqueSuffix: test1234
  orgPrefix: test
deployment:
  subscriptionID: 00000000-0000-0000-0000-000000000000
  template: infra/main.bicep
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cus", cfg.Naming.RegionAbbreviation)
	assert.Equal(t, "webapp", cfg.Naming.WorkloadName)
	// instance was omitted, the documented default applies
	assert.Equal(t, 1, cfg.Naming.Instance)
	// relative template paths resolve against the config file directory
	assert.Equal(t, filepath.Join(filepath.Dir(path), "infra", "main.bicep"), cfg.Deployment.Template)
}

func TestLoadRejectsExplicitZeroInstance(t *testing.T) {
	path := writeConfig(t, `naming:
  regionAbbreviation: cus
  environment: dev
  workloadName: webapp
  instance: 0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, naming.IsConfigurationError(err))
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `naming:
  regionAbbreviation: cus
  environment: dev
  workloadName: webapp
  regionabbrev: cus
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidNaming(t *testing.T) {
	path := writeConfig(t, `naming:
  regionAbbreviation: neu
  environment: dev
  workloadName: webapp
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, naming.IsConfigurationError(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
