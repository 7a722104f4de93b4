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

package check

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/config"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/deploy"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

func DefaultCheckOptions() *RawCheckOptions {
	return &RawCheckOptions{}
}

func BindCheckOptions(opts *RawCheckOptions, cmd *cobra.Command) error {
	cmd.Flags().StringVar(&opts.ConfigFile, "config-file", opts.ConfigFile, "naming config file path")
	cmd.Flags().StringVar(&opts.SubscriptionID, "subscription-id", opts.SubscriptionID, "subscription to check against, overrides the config file")
	return nil
}

// RawCheckOptions holds input values.
type RawCheckOptions struct {
	ConfigFile     string
	SubscriptionID string
}

func (o *RawCheckOptions) Validate() (*ValidatedCheckOptions, error) {
	if o.ConfigFile == "" {
		return nil, fmt.Errorf("--config-file is required")
	}
	return &ValidatedCheckOptions{
		validatedCheckOptions: &validatedCheckOptions{
			RawCheckOptions: o,
		},
	}, nil
}

// validatedCheckOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedCheckOptions struct {
	*RawCheckOptions
}

type ValidatedCheckOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedCheckOptions
}

func (o *ValidatedCheckOptions) Complete() (*CheckOptions, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, err
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

	client, err := deploy.NewClient(subscriptionID, region)
	if err != nil {
		return nil, err
	}

	return &CheckOptions{
		completedCheckOptions: &completedCheckOptions{
			Client: client,
			Names:  names,
			Region: region,
		},
	}, nil
}

// completedCheckOptions is a private wrapper that enforces a call of Complete() before the checks can be invoked.
type completedCheckOptions struct {
	Client *deploy.Client
	Names  naming.NameSet
	Region string
}

type CheckOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedCheckOptions
}

// CheckNames verifies the parts of a name set that can only fail at apply
// time: the region must exist in the subscription and globally-unique names
// must still be free.
func (o *CheckOptions) CheckNames(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)

	exists, err := o.Client.RegionExists(ctx, o.Region)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("region %s is not available in subscription %s", o.Region, o.Client.SubscriptionID)
	}
	logger.Info("region is available", "region", o.Region)

	availability, err := o.Client.CheckKeyVaultName(ctx, o.Names[naming.KeyVault])
	if err != nil {
		return err
	}
	if !availability.Available {
		return fmt.Errorf("key vault name %q is not available: %s", o.Names[naming.KeyVault], availability.Message)
	}
	logger.Info("key vault name is available", "name", o.Names[naming.KeyVault])

	return nil
}
