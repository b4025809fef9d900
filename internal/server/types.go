package server

import (
	"context"

	"github.com/harborlane/facility-gateway/internal/facility"
)

// FacilityCreator is the orchestration contract the handlers depend on.
// Satisfied by *facility.Orchestrator.
type FacilityCreator interface {
	Create(ctx context.Context, req *facility.CreateFacilityRequest) (facility.Response, error)
}
