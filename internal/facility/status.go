package facility

import (
	"context"
	"fmt"

	"github.com/harborlane/facility-gateway/internal/client"
)

// StatusApprover transitions the facility work package to its approved state
// once every child resource has been created.
type StatusApprover interface {
	Approve(ctx context.Context, facilityID, workPackageID int64) (client.ResourceResult, error)
}

type statusService struct {
	facility client.FacilityClient
}

// NewStatusService creates the work-package approval service.
func NewStatusService(facility client.FacilityClient) StatusApprover {
	return &statusService{facility: facility}
}

// Approve issues the approval POST. Same status-is-data contract as child
// creation: a structured non-200 comes back as a result, not an error.
func (s *statusService) Approve(ctx context.Context, facilityID, workPackageID int64) (client.ResourceResult, error) {
	result, err := s.facility.ApproveWorkPackage(ctx, facilityID, workPackageID)
	if err != nil {
		return client.ResourceResult{}, fmt.Errorf("approve facility %d: %w", facilityID, err)
	}
	return result, nil
}
