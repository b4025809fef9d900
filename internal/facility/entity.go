package facility

import (
	"context"
	"fmt"

	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/harborlane/facility-gateway/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EntityCreator creates child resources of one kind under a facility work
// package. A structured 4xx from the Facility API is a result, not an error;
// only transport-level failures and unacceptable statuses error.
type EntityCreator interface {
	EntityName() string
	CreateOne(ctx context.Context, item any, facilityID, workPackageID int64) (client.ResourceResult, error)
	CreateMany(ctx context.Context, items []any, facilityID, workPackageID int64) ([]client.ResourceResult, error)
}

// entityService is the generic child-creation service, instantiated once per
// entity kind with its configuration-event type.
type entityService struct {
	facility   client.FacilityClient
	eventType  string
	entityName string
}

// NewCounterpartyService creates the counterparty child-creation service.
func NewCounterpartyService(facility client.FacilityClient) EntityCreator {
	return &entityService{facility, client.EventTypeCounterparty, EntityNameCounterparty}
}

// NewFixedFeeService creates the fixed-fee child-creation service.
func NewFixedFeeService(facility client.FacilityClient) EntityCreator {
	return &entityService{facility, client.EventTypeFixedFee, EntityNameFixedFee}
}

// NewObligationService creates the obligation child-creation service.
func NewObligationService(facility client.FacilityClient) EntityCreator {
	return &entityService{facility, client.EventTypeObligation, EntityNameObligation}
}

// NewRepaymentProfileService creates the repayment-profile child-creation service.
func NewRepaymentProfileService(facility client.FacilityClient) EntityCreator {
	return &entityService{facility, client.EventTypeRepaymentProfile, EntityNameRepaymentProfile}
}

func (s *entityService) EntityName() string {
	return s.entityName
}

// CreateOne issues a single configuration-event POST for the item. The raw
// result is returned whatever its status; errors are tagged with the facility
// id they belong to.
func (s *entityService) CreateOne(ctx context.Context, item any, facilityID, workPackageID int64) (client.ResourceResult, error) {
	result, err := s.facility.CreateConfigurationEvent(ctx, facilityID, workPackageID, s.eventType, item)
	if err != nil {
		return client.ResourceResult{}, fmt.Errorf("create %s for facility %d: %w", s.entityName, facilityID, err)
	}
	return result, nil
}

// CreateMany fans out CreateOne over every item concurrently and waits for all
// of them. The result slice is index-aligned with items. If any call errors the
// batch errors; in-flight siblings are not cancelled and their outcomes are
// discarded.
func (s *entityService) CreateMany(ctx context.Context, items []any, facilityID, workPackageID int64) ([]client.ResourceResult, error) {
	utils.WithComponent("entity_service").Debug("CreateMany called",
		zap.String(utils.FieldEntity, s.entityName),
		zap.Int64(utils.FieldFacility, facilityID),
		zap.Int("item_count", len(items)))

	results := make([]client.ResourceResult, len(items))
	var g errgroup.Group
	for i, item := range items {
		g.Go(func() error {
			result, err := s.CreateOne(ctx, item, facilityID, workPackageID)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// toAnySlice widens a typed slice for the EntityCreator contract, preserving order.
func toAnySlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
