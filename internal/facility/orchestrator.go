package facility

import (
	"context"
	"maps"
	"net/http"
	"slices"

	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/harborlane/facility-gateway/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Collaborators are the stateless services the orchestrator composes. All are
// injected at construction time; the orchestrator holds no other state.
type Collaborators struct {
	Facility          client.FacilityClient
	Validator         AsyncValidator
	Approver          StatusApprover
	Counterparties    EntityCreator
	FixedFees         EntityCreator
	Obligations       EntityCreator
	RepaymentProfiles EntityCreator
}

// Orchestrator runs the end-to-end facility creation flow against the Facility
// and Ledger APIs and produces the unified response.
type Orchestrator struct {
	deps Collaborators
}

// NewOrchestrator creates an Orchestrator from explicit collaborators.
func NewOrchestrator(deps Collaborators) *Orchestrator {
	return &Orchestrator{deps: deps}
}

// NewDefaultOrchestrator wires the standard collaborators over the two API clients.
func NewDefaultOrchestrator(facility client.FacilityClient, ledger client.LedgerClient) *Orchestrator {
	return NewOrchestrator(Collaborators{
		Facility:          facility,
		Validator:         NewCurrencyValidator(ledger),
		Approver:          NewStatusService(facility),
		Counterparties:    NewCounterpartyService(facility),
		FixedFees:         NewFixedFeeService(facility),
		Obligations:       NewObligationService(facility),
		RepaymentProfiles: NewRepaymentProfileService(facility),
	})
}

// Create runs the six-stage pipeline: validate, create parent, fan out the four
// child batches, aggregate errors, approve, assemble. Structured upstream
// failures come back as a Response; any transport-level failure in any stage is
// wrapped once into a *CreationError carrying the original cause.
func (o *Orchestrator) Create(ctx context.Context, req *CreateFacilityRequest) (Response, error) {
	response, err := o.create(ctx, req)
	if err != nil {
		utils.WithComponent("facility_orchestrator").Error("Facility creation failed",
			zap.String("deal_id", req.Overview.DealID),
			zap.Error(err))
		return Response{}, &CreationError{Cause: err}
	}
	return response, nil
}

func (o *Orchestrator) create(ctx context.Context, req *CreateFacilityRequest) (Response, error) {
	// Stage 1: asynchronous validation. Nothing may be created while the
	// request has outstanding validation errors.
	validationErrors, err := o.deps.Validator.Validate(ctx, req)
	if err != nil {
		return Response{}, err
	}
	if len(validationErrors) > 0 {
		return Response{
			Status: http.StatusBadRequest,
			Data: map[string]any{
				KeyMessage:          MessageAsyncValidationError,
				KeyValidationErrors: validationErrors,
			},
		}, nil
	}

	// Stage 2: create the parent facility. Children need the work-package id
	// from this response, so any non-created status ends the run here.
	parent, err := o.deps.Facility.CreateFacility(ctx, req.Overview)
	if err != nil {
		return Response{}, err
	}
	if !parent.Created() {
		return Response{Status: parent.Status, Data: parent.Data}, nil
	}
	facilityID, err := int64Field(parent.Data, KeyFacilityID)
	if err != nil {
		return Response{}, err
	}
	workPackageID, err := int64Field(parent.Data, KeyWorkPackageID)
	if err != nil {
		return Response{}, err
	}

	utils.WithComponent("facility_orchestrator").Debug("Facility created, fanning out children",
		zap.Int64(utils.FieldFacility, facilityID),
		zap.Int64("work_package_id", workPackageID))

	// Stage 3: fan out the four child batches concurrently. Batches are
	// independent; a failed batch does not cancel in-flight siblings.
	var (
		counterpartyResults []client.ResourceResult
		fixedFeeResults     []client.ResourceResult
		obligationResults   []client.ResourceResult
		profileResults      []client.ResourceResult
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		counterpartyResults, err = o.deps.Counterparties.CreateMany(ctx, toAnySlice(req.Counterparties), facilityID, workPackageID)
		return err
	})
	g.Go(func() error {
		var err error
		fixedFeeResults, err = o.deps.FixedFees.CreateMany(ctx, toAnySlice(req.FixedFees), facilityID, workPackageID)
		return err
	})
	g.Go(func() error {
		var err error
		obligationResults, err = o.deps.Obligations.CreateMany(ctx, toAnySlice(req.Obligations), facilityID, workPackageID)
		return err
	})
	g.Go(func() error {
		var err error
		profileResults, err = o.deps.RepaymentProfiles.CreateMany(ctx, toAnySlice(req.RepaymentProfiles), facilityID, workPackageID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	// Stage 4: aggregate structured child failures in fixed kind order, then
	// input order within each kind.
	aggregated := slices.Concat(
		collectEntityErrors(EntityNameCounterparty, counterpartyResults),
		collectEntityErrors(EntityNameFixedFee, fixedFeeResults),
		collectEntityErrors(EntityNameObligation, obligationResults),
		collectEntityErrors(EntityNameRepaymentProfile, profileResults),
	)
	if len(aggregated) > 0 {
		return errorResponse(aggregated), nil
	}

	// Stage 5: approve the work package.
	approved, err := o.deps.Approver.Approve(ctx, facilityID, workPackageID)
	if err != nil {
		return Response{}, err
	}
	if !approved.OK() {
		return Response{
			Status: approved.Status,
			Data: map[string]any{
				KeyStatusCode: approved.Status,
				KeyMessage:    MessageApprovedStatusError,
			},
		}, nil
	}

	// Stage 6: merge everything into the success payload.
	return Response{
		Status: http.StatusCreated,
		Data:   successPayload(parent, approved, counterpartyResults, fixedFeeResults, obligationResults, profileResults),
	}, nil
}

func successPayload(parent, approved client.ResourceResult, counterparties, fixedFees, obligations, profiles []client.ResourceResult) map[string]any {
	merged := make(map[string]any, len(parent.Data)+5)
	maps.Copy(merged, parent.Data)
	merged[KeyState] = approved.Data[KeyState]
	merged["counterparties"] = resultData(counterparties)
	merged["fixedFees"] = resultData(fixedFees)
	merged["obligations"] = resultData(obligations)
	merged["repaymentProfiles"] = resultData(profiles)
	return merged
}

func resultData(results []client.ResourceResult) []map[string]any {
	data := make([]map[string]any, len(results))
	for i, result := range results {
		data[i] = result.Data
	}
	return data
}
