package client

import (
	"context"
	"fmt"
	"strings"
)

// Configuration-event types understood by the Facility API. Each child entity
// kind posts to its own event path segment.
const (
	EventTypeCounterparty     = "counterparty"
	EventTypeFixedFee         = "fixed-fee"
	EventTypeObligation       = "obligation"
	EventTypeRepaymentProfile = "repayment-profile"
)

// facilityClient is an unexported concrete implementation of FacilityClient.
type facilityClient struct {
	*HTTPClient
	facilityPath string
}

// NewFacilityClient creates a configured FacilityClient implementation for the
// provided Facility API base URL and credentials. facilityPath is the resource
// path the facility endpoints hang off (e.g. "/facility").
//
// The concrete returned type is unexported; callers work with the
// FacilityClient interface.
func NewFacilityClient(url, username, password, facilityPath string) FacilityClient {
	return &facilityClient{
		HTTPClient:   NewHTTPClient(url, username, password),
		facilityPath: strings.TrimSuffix(facilityPath, "/"),
	}
}

func (c *facilityClient) CreateFacility(ctx context.Context, overview any) (ResourceResult, error) {
	result, err := c.DoResource(ctx, "POST", c.facilityPath, overview)
	if err != nil {
		return ResourceResult{}, fmt.Errorf("create facility: %w", err)
	}
	return result, nil
}

func (c *facilityClient) CreateConfigurationEvent(ctx context.Context, facilityID, workPackageID int64, eventType string, payload any) (ResourceResult, error) {
	endpoint := fmt.Sprintf("%s/%d/work-package/%d/configuration-event/%s", c.facilityPath, facilityID, workPackageID, eventType)
	result, err := c.DoResource(ctx, "POST", endpoint, payload)
	if err != nil {
		return ResourceResult{}, fmt.Errorf("create %s configuration event for facility %d: %w", eventType, facilityID, err)
	}
	return result, nil
}

func (c *facilityClient) ApproveWorkPackage(ctx context.Context, facilityID, workPackageID int64) (ResourceResult, error) {
	endpoint := fmt.Sprintf("%s/%d/work-package/%d/approve", c.facilityPath, facilityID, workPackageID)
	result, err := c.DoResource(ctx, "POST", endpoint, nil)
	if err != nil {
		return ResourceResult{}, fmt.Errorf("approve work package %d for facility %d: %w", workPackageID, facilityID, err)
	}
	return result, nil
}
