package server

import (
	"context"

	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/harborlane/facility-gateway/internal/facility"
	"github.com/stretchr/testify/mock"
)

type MockFacilityCreator struct {
	mock.Mock
}

func (m *MockFacilityCreator) Create(ctx context.Context, req *facility.CreateFacilityRequest) (facility.Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(facility.Response), args.Error(1)
}

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
