// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

func TestValidate(t *testing.T) {
	for _, testCase := range []struct {
		name          string
		opts          RawGenerateOptions
		errorExpected bool
	}{
		{
			name: "valid flags",
			opts: RawGenerateOptions{WorkloadName: "webapp", Format: "yaml", Cloud: "public"},
		},
		{
			name:          "invalid format",
			opts:          RawGenerateOptions{WorkloadName: "webapp", Format: "toml", Cloud: "public"},
			errorExpected: true,
		},
		{
			name:          "invalid cloud",
			opts:          RawGenerateOptions{WorkloadName: "webapp", Format: "yaml", Cloud: "fairfax"},
			errorExpected: true,
		},
		{
			name:          "no config file and no workload",
			opts:          RawGenerateOptions{Format: "yaml", Cloud: "public"},
			errorExpected: true,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := testCase.opts.Validate()
			if testCase.errorExpected {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompleteAppliesFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`naming:
  regionAbbreviation: cus
  environment: dev
  workloadName: webapp
  instance: 3
`), 0644))

	opts := RawGenerateOptions{
		ConfigFile:  configFile,
		Environment: "prod",
		Instance:    7,
		Format:      "yaml",
		Cloud:       "usgovernment",
	}
	validated, err := opts.Validate()
	require.NoError(t, err)
	completed, err := validated.Complete()
	require.NoError(t, err)

	// file values survive where no flag was set
	assert.Equal(t, "cus", completed.NamingConfig.RegionAbbreviation)
	assert.Equal(t, "webapp", completed.NamingConfig.WorkloadName)
	// flags win over file values
	assert.Equal(t, "prod", completed.NamingConfig.Environment)
	assert.Equal(t, 7, completed.NamingConfig.Instance)
	assert.Equal(t, naming.USGovernmentCloud, completed.Cloud)
}

func TestCompleteWithoutConfigFile(t *testing.T) {
	opts := RawGenerateOptions{
		Region:       "eus",
		Environment:  "dev",
		WorkloadName: "payroll",
		Format:       "json",
		Cloud:        "public",
	}
	validated, err := opts.Validate()
	require.NoError(t, err)
	completed, err := validated.Complete()
	require.NoError(t, err)

	assert.Equal(t, "payroll", completed.NamingConfig.WorkloadName)
	// the documented instance default applies when the flag is unset
	assert.Equal(t, 1, completed.NamingConfig.Instance)

	names, err := naming.GenerateForCloud(completed.NamingConfig, completed.Cloud)
	require.NoError(t, err)
	assert.Equal(t, "rg-payroll-dev-eastus", names[naming.ResourceGroupGeneral])
}
