// internal/facility/types.go
// Package facility implements the facility-creation orchestration pipeline:
// asynchronous validation, parent creation, concurrent child fan-out, error
// aggregation, and work-package approval.
package facility

import (
	"github.com/shopspring/decimal"
)

// Overview carries the top-level facility fields posted to the parent-creation
// endpoint.
type Overview struct {
	// Name is the display name of the facility
	Name string `json:"name" binding:"required"`
	// Currency is the ISO currency code the facility is denominated in
	Currency string `json:"currency" binding:"required"`
	// FacilityAmount is the total committed amount
	FacilityAmount decimal.Decimal `json:"facilityAmount" binding:"required"`
	// DealID is the identifier of the deal the facility belongs to
	DealID string `json:"dealId" binding:"required"`
	// ObligorURN identifies the primary obligor
	ObligorURN string `json:"obligorUrn" binding:"required"`
	// EffectiveDate is the ISO date the facility takes effect
	EffectiveDate string `json:"effectiveDate" binding:"required"`
	// ExpiryDate is the ISO date cover ends
	ExpiryDate string `json:"expiryDate" binding:"required"`
	// ProductType is the optional product classification
	ProductType string `json:"productType,omitempty"`
}

// Counterparty is a party participating in the facility.
type Counterparty struct {
	CounterpartyURN string          `json:"counterpartyUrn" binding:"required"`
	RoleID          string          `json:"roleId" binding:"required"`
	StartDate       string          `json:"startDate" binding:"required"`
	ExitDate        string          `json:"exitDate" binding:"required"`
	SharePercentage decimal.Decimal `json:"sharePercentage,omitempty"`
}

// FixedFee is a fee charged against the facility.
type FixedFee struct {
	FeeTypeID     string          `json:"feeTypeId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"required"`
	EffectiveDate string          `json:"effectiveDate" binding:"required"`
	DueDate       string          `json:"dueDate" binding:"required"`
}

// Obligation is a drawdown obligation under the facility.
type Obligation struct {
	ProductSubtype string          `json:"productSubtype" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
	EffectiveDate  string          `json:"effectiveDate" binding:"required"`
	MaturityDate   string          `json:"maturityDate" binding:"required"`
}

// RepaymentProfileAllocation is a single scheduled repayment amount.
type RepaymentProfileAllocation struct {
	DueDate string          `json:"dueDate" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

// RepaymentProfile groups scheduled repayments under a named profile.
type RepaymentProfile struct {
	Name        string                       `json:"name" binding:"required"`
	Allocations []RepaymentProfileAllocation `json:"allocations" binding:"required,min=1,dive"`
}

// CreateFacilityRequest is the aggregate payload accepted by the gateway. All
// child arrays must be non-empty; cross-item uniqueness rules are enforced by
// the server layer before orchestration starts.
type CreateFacilityRequest struct {
	Overview          Overview           `json:"overview" binding:"required"`
	Counterparties    []Counterparty     `json:"counterparties" binding:"required,min=1,dive"`
	FixedFees         []FixedFee         `json:"fixedFees" binding:"required,min=1,dive"`
	Obligations       []Obligation       `json:"obligations" binding:"required,min=1,dive"`
	RepaymentProfiles []RepaymentProfile `json:"repaymentProfiles" binding:"required,min=1,dive"`
}

// EntityError is a single child-creation failure tagged with its entity kind
// and zero-based position in the originating request array.
type EntityError struct {
	EntityName       string `json:"entityName"`
	Index            int    `json:"index"`
	Message          string `json:"message,omitempty"`
	Status           int    `json:"status"`
	ValidationErrors []any  `json:"validationErrors,omitempty"`
}

// Response is the orchestration outcome handed to the HTTP layer: the status
// code to return and the body to serialize.
type Response struct {
	Status int
	Data   map[string]any
}

// CreationError is the single error surfaced when any orchestration stage
// fails at the transport level. Callers see only the generic message; the
// original failure is preserved as the cause for diagnostics.
type CreationError struct {
	Cause error
}

func (e *CreationError) Error() string {
	return MessageErrorCreatingFacility
}

func (e *CreationError) Unwrap() error {
	return e.Cause
}
