package infra

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"

	"github.com/tnqbao/gau-hackathon-service/config"
)

// AzureCloudServiceClient manages Azure cloud services inside one resource
// group.
type AzureCloudServiceClient struct {
	client          *armcompute.CloudServicesClient
	resourceGroup   string
	defaultLocation string
}

// InitAzureCloudServiceClient returns nil when Azure credentials are not
// configured.
func InitAzureCloudServiceClient(cfg *config.EnvConfig) *AzureCloudServiceClient {
	if cfg.Azure.SubscriptionID == "" || cfg.Azure.TenantID == "" {
		log.Println("Azure subscription not configured, cloud service provisioning disabled")
		return nil
	}

	credential, err := azidentity.NewClientSecretCredential(
		cfg.Azure.TenantID,
		cfg.Azure.ClientID,
		cfg.Azure.ClientSecret,
		nil,
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to create Azure credential: %v", err))
	}

	client, err := newAzureCloudServiceClient(cfg.Azure.SubscriptionID, credential, nil, cfg.Azure.ResourceGroup, cfg.Azure.Location)
	if err != nil {
		panic(fmt.Sprintf("Failed to create Azure cloud services client: %v", err))
	}
	return client
}

func newAzureCloudServiceClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions, resourceGroup, location string) (*AzureCloudServiceClient, error) {
	client, err := armcompute.NewCloudServicesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &AzureCloudServiceClient{
		client:          client,
		resourceGroup:   resourceGroup,
		defaultLocation: location,
	}, nil
}

// Exists reports whether the cloud service is known to Azure. A not found
// response is reported as (false, nil); any other failure is returned.
func (a *AzureCloudServiceClient) Exists(ctx context.Context, name string) (bool, error) {
	_, err := a.client.Get(ctx, a.resourceGroup, name, nil)
	if err == nil {
		return true, nil
	}
	if IsAzureNotFound(err) {
		return false, nil
	}
	return false, err
}

// Create starts the cloud service deployment and waits for the long running
// operation to finish.
func (a *AzureCloudServiceClient) Create(ctx context.Context, name, label, location string) error {
	if location == "" {
		location = a.defaultLocation
	}

	poller, err := a.client.BeginCreateOrUpdate(ctx, a.resourceGroup, name, &armcompute.CloudServicesClientBeginCreateOrUpdateOptions{
		Parameters: &armcompute.CloudService{
			Location: to.Ptr(location),
			Tags: map[string]*string{
				"label": to.Ptr(label),
			},
			Properties: &armcompute.CloudServiceProperties{
				UpgradeMode: to.Ptr(armcompute.CloudServiceUpgradeModeAuto),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start cloud service %s creation: %w", name, err)
	}

	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("cloud service %s creation did not complete: %w", name, err)
	}
	return nil
}

func IsAzureNotFound(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound || respErr.ErrorCode == "ResourceNotFound"
	}
	return false
}
