package client

import "context"

// FacilityClient defines the operations we perform against the Facility API.
// Use the concrete NewFacilityClient to obtain an implementation that satisfies
// this interface.
type FacilityClient interface {
	CreateFacility(ctx context.Context, overview any) (ResourceResult, error)
	CreateConfigurationEvent(ctx context.Context, facilityID, workPackageID int64, eventType string, payload any) (ResourceResult, error)
	ApproveWorkPackage(ctx context.Context, facilityID, workPackageID int64) (ResourceResult, error)
}

// LedgerClient defines the operations we perform against the Ledger API.
// Use NewLedgerClient to create a real implementation.
type LedgerClient interface {
	GetCurrencies(ctx context.Context) ([]Currency, error)
	GetCurrency(ctx context.Context, id string) (*Currency, error)
}
