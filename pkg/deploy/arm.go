package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/go-logr/logr"
)

// Client drives ARM deployments for one subscription and region.
type Client struct {
	creds          *azidentity.DefaultAzureCredential
	SubscriptionID string
	Region         string
}

func NewClient(subscriptionID, region string) (*Client, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Azure credentials: %w", err)
	}
	return &Client{
		creds:          cred,
		SubscriptionID: subscriptionID,
		Region:         region,
	}, nil
}

// EnsureResourceGroup creates or updates the resource group so a deployment
// into it can proceed.
func (c *Client) EnsureResourceGroup(ctx context.Context, name string, tags map[string]string) error {
	client, err := armresources.NewResourceGroupsClient(c.SubscriptionID, c.creds, nil)
	if err != nil {
		return fmt.Errorf("failed to create resource groups client: %w", err)
	}

	rgTags := map[string]*string{}
	for k, v := range tags {
		rgTags[k] = to.Ptr(v)
	}

	if _, err := client.Get(ctx, name, nil); err != nil {
		resourceGroup := armresources.ResourceGroup{
			Location: to.Ptr(c.Region),
			Tags:     rgTags,
		}
		if _, err := client.CreateOrUpdate(ctx, name, resourceGroup, nil); err != nil {
			return fmt.Errorf("failed to create resource group: %w", err)
		}
		return nil
	}

	patch := armresources.ResourceGroupPatchable{
		Tags: rgTags,
	}
	if _, err := client.Update(ctx, name, patch, nil); err != nil {
		return fmt.Errorf("failed to update resource group: %w", err)
	}
	return nil
}

// Deploy runs an incremental ARM deployment of the given template and
// parameters into the resource group and waits for completion. It returns the
// deployment outputs, if any.
func (c *Client) Deploy(ctx context.Context, resourceGroup, deploymentName string, template, parameters map[string]any) (map[string]any, error) {
	logger := logr.FromContextOrDiscard(ctx)

	client, err := armresources.NewDeploymentsClient(c.SubscriptionID, c.creds, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create deployments client: %w", err)
	}

	deployment := armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode:       to.Ptr(armresources.DeploymentModeIncremental),
			Template:   template,
			Parameters: parameters,
		},
	}

	poller, err := client.BeginCreateOrUpdate(ctx, resourceGroup, deploymentName, deployment, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}
	logger.Info("deployment started", "deployment", deploymentName, "resourceGroup", resourceGroup)

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for deployment completion: %w", err)
	}
	logger.Info("deployment finished successfully", "deployment", deploymentName, "responseId", *resp.ID)

	if resp.Properties.Outputs != nil {
		if outputMap, ok := resp.Properties.Outputs.(map[string]any); ok {
			return outputMap, nil
		}
	}
	return nil, nil
}

// WhatIf runs a what-if deployment and prints the change report without
// touching any resource.
func (c *Client) WhatIf(ctx context.Context, resourceGroup, deploymentName string, template, parameters map[string]any) error {
	logger := logr.FromContextOrDiscard(ctx)

	client, err := armresources.NewDeploymentsClient(c.SubscriptionID, c.creds, nil)
	if err != nil {
		return fmt.Errorf("failed to create deployments client: %w", err)
	}

	deployment := armresources.DeploymentWhatIf{
		Properties: &armresources.DeploymentWhatIfProperties{
			Mode:       to.Ptr(armresources.DeploymentModeIncremental),
			Template:   template,
			Parameters: parameters,
		},
	}

	poller, err := client.BeginWhatIf(ctx, resourceGroup, deploymentName, deployment, nil)
	if err != nil {
		return fmt.Errorf("failed to create what-if deployment: %w", err)
	}
	logger.Info("what-if deployment started", "deployment", deploymentName, "resourceGroup", resourceGroup)

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to wait for what-if completion: %w", err)
	}
	logger.Info("what-if deployment finished", "deployment", deploymentName)

	fmt.Println("Change report for what-if deployment")
	for _, changeType := range []armresources.ChangeType{
		armresources.ChangeTypeCreate,
		armresources.ChangeTypeDeploy,
		armresources.ChangeTypeModify,
		armresources.ChangeTypeDelete,
		armresources.ChangeTypeIgnore,
		armresources.ChangeTypeNoChange,
		armresources.ChangeTypeUnsupported,
	} {
		fmt.Println("----------")
		fmt.Println(changeType)
		printChanges(changeType, resp.Properties.Changes)
	}
	return nil
}

func printChanges(t armresources.ChangeType, changes []*armresources.WhatIfChange) {
	for _, change := range changes {
		if *change.ChangeType == t {
			fmt.Printf("%s %s\n", strings.Repeat("\t", 1), *change.ResourceID)
			for _, delta := range change.Delta {
				printPropertyChange(2, delta)
			}
		}
	}
}

func printPropertyChange(level int, change *armresources.WhatIfPropertyChange) {
	fmt.Printf("%s%s:\n", strings.Repeat("\t", level), *change.Path)
	fmt.Printf("%s\tBefore:%v\n", strings.Repeat("\t", level), change.Before)
	fmt.Printf("%s\tAfter:%v\n", strings.Repeat("\t", level), change.After)
	for _, child := range change.Children {
		printPropertyChange(level+1, child)
	}
}
