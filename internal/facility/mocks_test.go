package facility

import (
	"context"

	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/stretchr/testify/mock"
)

// MockFacilityClient is a mock implementation of client.FacilityClient
type MockFacilityClient struct {
	mock.Mock
}

func (m *MockFacilityClient) CreateFacility(ctx context.Context, overview any) (client.ResourceResult, error) {
	args := m.Called(ctx, overview)
	return args.Get(0).(client.ResourceResult), args.Error(1)
}

func (m *MockFacilityClient) CreateConfigurationEvent(ctx context.Context, facilityID, workPackageID int64, eventType string, payload any) (client.ResourceResult, error) {
	args := m.Called(ctx, facilityID, workPackageID, eventType, payload)
	return args.Get(0).(client.ResourceResult), args.Error(1)
}

func (m *MockFacilityClient) ApproveWorkPackage(ctx context.Context, facilityID, workPackageID int64) (client.ResourceResult, error) {
	args := m.Called(ctx, facilityID, workPackageID)
	return args.Get(0).(client.ResourceResult), args.Error(1)
}

// MockLedgerClient is a mock implementation of client.LedgerClient
type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) GetCurrencies(ctx context.Context) ([]client.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Currency), args.Error(1)
}

func (m *MockLedgerClient) GetCurrency(ctx context.Context, id string) (*client.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Currency), args.Error(1)
}

// MockAsyncValidator is a mock implementation of AsyncValidator
type MockAsyncValidator struct {
	mock.Mock
}

func (m *MockAsyncValidator) Validate(ctx context.Context, req *CreateFacilityRequest) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockStatusApprover is a mock implementation of StatusApprover
type MockStatusApprover struct {
	mock.Mock
}

func (m *MockStatusApprover) Approve(ctx context.Context, facilityID, workPackageID int64) (client.ResourceResult, error) {
	args := m.Called(ctx, facilityID, workPackageID)
	return args.Get(0).(client.ResourceResult), args.Error(1)
}

// MockEntityCreator is a mock implementation of EntityCreator
type MockEntityCreator struct {
	mock.Mock
	name string
}

func (m *MockEntityCreator) EntityName() string {
	return m.name
}

func (m *MockEntityCreator) CreateOne(ctx context.Context, item any, facilityID, workPackageID int64) (client.ResourceResult, error) {
	args := m.Called(ctx, item, facilityID, workPackageID)
	return args.Get(0).(client.ResourceResult), args.Error(1)
}

func (m *MockEntityCreator) CreateMany(ctx context.Context, items []any, facilityID, workPackageID int64) ([]client.ResourceResult, error) {
	args := m.Called(ctx, items, facilityID, workPackageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.ResourceResult), args.Error(1)
}
