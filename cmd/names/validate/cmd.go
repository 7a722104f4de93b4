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

package validate

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/config"
)

func NewCommand() (*cobra.Command, error) {
	var configFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a naming config file.",
		Long:  "Validate a naming config file, reporting the first constraint violation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return fmt.Errorf("--config-file is required")
			}
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			logger := logr.FromContextOrDiscard(cmd.Context())
			logger.Info("naming config is valid", "configFile", configFile, "workload", cfg.Naming.WorkloadName)
			return nil
		},
	}
	cmd.Flags().StringVar(&configFile, "config-file", configFile, "naming config file path")
	return cmd, nil
}
