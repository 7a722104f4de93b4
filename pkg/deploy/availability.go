package deploy

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// NameAvailability is the outcome of an online name availability check.
type NameAvailability struct {
	Available bool
	// Message explains why the name is unavailable. Empty when available.
	Message string
}

// CheckKeyVaultName asks ARM whether a generated key vault name is still free.
// Truncation of long composite names is a hard cut, so two workloads can
// collide after the cut; checking up front surfaces that before a deployment
// fails halfway through.
func (c *Client) CheckKeyVaultName(ctx context.Context, name string) (*NameAvailability, error) {
	client, err := armkeyvault.NewVaultsClient(c.SubscriptionID, c.creds, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create vaults client: %w", err)
	}
	resp, err := client.CheckNameAvailability(ctx, armkeyvault.VaultCheckNameAvailabilityParameters{
		Name: to.Ptr(name),
		Type: to.Ptr("Microsoft.KeyVault/vaults"),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check key vault name availability: %w", err)
	}

	availability := &NameAvailability{}
	if resp.NameAvailable != nil {
		availability.Available = *resp.NameAvailable
	}
	if resp.Message != nil {
		availability.Message = *resp.Message
	}
	return availability, nil
}

// RegionExists reports whether the subscription can deploy into the given
// location.
func (c *Client) RegionExists(ctx context.Context, location string) (bool, error) {
	client, err := armsubscriptions.NewClient(c.creds, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create subscriptions client: %w", err)
	}
	pager := client.NewListLocationsPager(c.SubscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to list subscription locations: %w", err)
		}
		for _, item := range page.Value {
			if item.Name != nil && *item.Name == location {
				return true, nil
			}
		}
	}
	return false, nil
}
