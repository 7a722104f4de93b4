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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/internal/output"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/config"
	"github.com/BenTheCloudGuy/msftlabs-bicep-webapp-demo/pkg/naming"
)

func DefaultGenerateOptions() *RawGenerateOptions {
	return &RawGenerateOptions{
		Format: "yaml",
		Cloud:  "public",
	}
}

func BindGenerateOptions(opts *RawGenerateOptions, cmd *cobra.Command) error {
	cmd.Flags().StringVar(&opts.ConfigFile, "config-file", opts.ConfigFile, "naming config file path")
	cmd.Flags().StringVar(&opts.Region, "region", opts.Region, fmt.Sprintf("region abbreviation, one of %v", naming.RegionAbbreviations()))
	cmd.Flags().StringVar(&opts.Environment, "environment", opts.Environment, "environment (dev, qa, prod)")
	cmd.Flags().StringVar(&opts.WorkloadName, "workload", opts.WorkloadName, "workload name")
	cmd.Flags().StringVar(&opts.UniqueSuffix, "unique-suffix", opts.UniqueSuffix, "suffix for globally-unique resource names")
	cmd.Flags().StringVar(&opts.OrgPrefix, "org-prefix", opts.OrgPrefix, "organization prefix prepended to every name")
	cmd.Flags().IntVar(&opts.Instance, "instance", opts.Instance, "instance number for multi-instance resources")
	cmd.Flags().StringVar(&opts.Cloud, "cloud", opts.Cloud, "the cloud (public, usgovernment)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", opts.Format, "output format (yaml, json)")
	return nil
}

// RawGenerateOptions holds input values.
type RawGenerateOptions struct {
	ConfigFile   string
	Region       string
	Environment  string
	WorkloadName string
	UniqueSuffix string
	OrgPrefix    string
	Instance     int
	Cloud        string
	Format       string
}

func (o *RawGenerateOptions) Validate() (*ValidatedGenerateOptions, error) {
	validFormats := sets.New[string]("yaml", "json")
	if !validFormats.Has(o.Format) {
		return nil, fmt.Errorf("invalid output format %s, must be one of %v", o.Format, sets.List(validFormats))
	}
	validClouds := sets.New[string]("public", "usgovernment")
	if !validClouds.Has(o.Cloud) {
		return nil, fmt.Errorf("invalid cloud %s, must be one of %v", o.Cloud, sets.List(validClouds))
	}
	if o.ConfigFile == "" && o.WorkloadName == "" {
		return nil, fmt.Errorf("either --config-file or --workload is required")
	}
	return &ValidatedGenerateOptions{
		validatedGenerateOptions: &validatedGenerateOptions{
			RawGenerateOptions: o,
		},
	}, nil
}

// validatedGenerateOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedGenerateOptions struct {
	*RawGenerateOptions
}

type ValidatedGenerateOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedGenerateOptions
}

func (o *ValidatedGenerateOptions) Complete() (*GenerateOptions, error) {
	namingConfig := naming.DefaultConfig()
	if o.ConfigFile != "" {
		cfg, err := config.Load(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		namingConfig = cfg.Naming
	}

	// flags override file values
	if o.Region != "" {
		namingConfig.RegionAbbreviation = o.Region
	}
	if o.Environment != "" {
		namingConfig.Environment = o.Environment
	}
	if o.WorkloadName != "" {
		namingConfig.WorkloadName = o.WorkloadName
	}
	if o.UniqueSuffix != "" {
		namingConfig.UniqueSuffix = o.UniqueSuffix
	}
	if o.OrgPrefix != "" {
		namingConfig.OrgPrefix = o.OrgPrefix
	}
	if o.Instance != 0 {
		namingConfig.Instance = o.Instance
	}

	cloud := naming.PublicCloud
	if o.Cloud == "usgovernment" {
		cloud = naming.USGovernmentCloud
	}

	return &GenerateOptions{
		completedGenerateOptions: &completedGenerateOptions{
			NamingConfig: namingConfig,
			Cloud:        cloud,
			Format:       o.Format,
		},
	}, nil
}

// completedGenerateOptions is a private wrapper that enforces a call of Complete() before generation can be invoked.
type completedGenerateOptions struct {
	NamingConfig naming.NamingConfig
	Cloud        naming.Cloud
	Format       string
}

type GenerateOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedGenerateOptions
}

func (o *GenerateOptions) GenerateNames(ctx context.Context) error {
	names, err := naming.GenerateForCloud(o.NamingConfig, o.Cloud)
	if err != nil {
		return err
	}

	var rendered string
	switch o.Format {
	case "json":
		rendered, err = output.PrettyPrintJSON(names)
	default:
		rendered, err = output.PrettyPrintYAML(names)
	}
	if err != nil {
		return fmt.Errorf("failed to render name set: %w", err)
	}

	_, err = fmt.Fprint(os.Stdout, rendered)
	return err
}
