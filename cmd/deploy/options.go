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

package deploy

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/internal/output"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/bicep"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/config"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/deploy"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

func DefaultDeployOptions() *RawDeployOptions {
	return &RawDeployOptions{}
}

func BindDeployOptions(opts *RawDeployOptions, cmd *cobra.Command) error {
	cmd.Flags().StringVar(&opts.ConfigFile, "config-file", opts.ConfigFile, "naming and deployment config file path")
	cmd.Flags().StringVar(&opts.SubscriptionID, "subscription-id", opts.SubscriptionID, "target subscription, overrides the config file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", opts.DryRun, "run a what-if deployment and print the change report instead of deploying")
	cmd.Flags().BoolVar(&opts.Debug, "debug", opts.Debug, "log the bicep JSON-RPC traffic")
	return nil
}

// RawDeployOptions holds input values.
type RawDeployOptions struct {
	ConfigFile     string
	SubscriptionID string
	DryRun         bool
	Debug          bool
}

func (o *RawDeployOptions) Validate() (*ValidatedDeployOptions, error) {
	if o.ConfigFile == "" {
		return nil, fmt.Errorf("--config-file is required")
	}
	return &ValidatedDeployOptions{
		validatedDeployOptions: &validatedDeployOptions{
			RawDeployOptions: o,
		},
	}, nil
}

// validatedDeployOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedDeployOptions struct {
	*RawDeployOptions
}

type ValidatedDeployOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedDeployOptions
}

func (o *ValidatedDeployOptions) Complete() (*DeployOptions, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, err
	}
	if cfg.Deployment.Template == "" {
		return nil, fmt.Errorf("deployment.template is required in the config file")
	}

	subscriptionID := cfg.Deployment.SubscriptionID
	if o.SubscriptionID != "" {
		subscriptionID = o.SubscriptionID
	}
	if subscriptionID == "" {
		return nil, fmt.Errorf("a subscription ID is required, set deployment.subscriptionID in the config file or pass --subscription-id")
	}

	region, ok := naming.RegionFullName(cfg.Naming.RegionAbbreviation)
	if !ok {
		return nil, &naming.ConfigurationError{Field: "regionAbbreviation", Message: fmt.Sprintf("%q is not a known region abbreviation", cfg.Naming.RegionAbbreviation)}
	}

	names, err := naming.Generate(cfg.Naming)
	if err != nil {
		return nil, err
	}

	deploymentName := cfg.Deployment.DeploymentName
	if deploymentName == "" {
		deploymentName = fmt.Sprintf("%s-%s", cfg.Naming.WorkloadName, uuid.New().String())
	}

	client, err := deploy.NewClient(subscriptionID, region)
	if err != nil {
		return nil, err
	}

	return &DeployOptions{
		completedDeployOptions: &completedDeployOptions{
			Client:         client,
			Names:          names,
			NamingConfig:   cfg.Naming,
			Template:       cfg.Deployment.Template,
			DeploymentName: deploymentName,
			Region:         region,
			DryRun:         o.DryRun,
			Debug:          o.Debug,
		},
	}, nil
}

// completedDeployOptions is a private wrapper that enforces a call of Complete() before the deployment can be invoked.
type completedDeployOptions struct {
	Client         *deploy.Client
	Names          naming.NameSet
	NamingConfig   naming.NamingConfig
	Template       string
	DeploymentName string
	Region         string
	DryRun         bool
	Debug          bool
}

type DeployOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedDeployOptions
}

// RunDeployment compiles the Bicep entrypoint with the generated names
// injected as parameters, ensures the resource group, then runs the ARM
// deployment (or a what-if when dry-run is set).
func (o *DeployOptions) RunDeployment(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)

	compiler, err := bicep.StartJSONRPCServer(ctx, logger, o.Debug)
	if err != nil {
		return err
	}

	template, parameters, err := o.compile(ctx, compiler)
	if err != nil {
		return err
	}

	resourceGroup := o.Names[naming.ResourceGroupGeneral]
	if err := o.Client.EnsureResourceGroup(ctx, resourceGroup, map[string]string{
		"environment": o.NamingConfig.Environment,
		"workload":    o.NamingConfig.WorkloadName,
	}); err != nil {
		return err
	}
	logger.Info("resource group is ready", "resourceGroup", resourceGroup)

	if o.DryRun {
		return o.Client.WhatIf(ctx, resourceGroup, o.DeploymentName, template, parameters)
	}

	outputs, err := o.Client.Deploy(ctx, resourceGroup, o.DeploymentName, template, parameters)
	if err != nil {
		return err
	}
	if len(outputs) > 0 {
		rendered, err := output.PrettyPrintYAML(outputs)
		if err != nil {
			return fmt.Errorf("failed to render deployment outputs: %w", err)
		}
		fmt.Print(rendered)
	}
	return nil
}

func (o *DeployOptions) compile(ctx context.Context, compiler *bicep.Compiler) (map[string]any, map[string]any, error) {
	if strings.EqualFold(filepath.Ext(o.Template), ".bicepparam") {
		return compiler.BuildParams(ctx, o.Template, deploy.NameParameterOverrides(o.Names))
	}
	template, err := compiler.Build(ctx, o.Template)
	if err != nil {
		return nil, nil, err
	}
	// A raw .bicep entrypoint declares resourceNames and location parameters
	// by convention.
	parameters := deploy.ARMParameters(map[string]any{
		"resourceNames": map[string]string(o.Names),
		"location":      o.Region,
	})
	return template, parameters, nil
}
