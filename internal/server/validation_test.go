package server

import (
	"testing"

	"github.com/harborlane/facility-gateway/internal/facility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestFixture() *facility.CreateFacilityRequest {
	return &facility.CreateFacilityRequest{
		Counterparties: []facility.Counterparty{
			{CounterpartyURN: "00400001"},
			{CounterpartyURN: "00400002"},
		},
		RepaymentProfiles: []facility.RepaymentProfile{
			{Name: "quarterly", Allocations: []facility.RepaymentProfileAllocation{
				{DueDate: "2026-04-01"},
				{DueDate: "2026-07-01"},
			}},
		},
	}
}

func TestValidateFacilityRequest(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		assert.Empty(t, validateFacilityRequest(requestFixture()))
	})

	t.Run("Duplicate counterparty URN", func(t *testing.T) {
		req := requestFixture()
		req.Counterparties[1].CounterpartyURN = "00400001"

		validationErrors := validateFacilityRequest(req)

		require.Len(t, validationErrors, 1)
		assert.Equal(t, "counterparties.1.counterpartyUrn must be unique - 00400001", validationErrors[0])
	})

	t.Run("Duplicate repayment profile name", func(t *testing.T) {
		req := requestFixture()
		req.RepaymentProfiles = append(req.RepaymentProfiles, facility.RepaymentProfile{
			Name: "quarterly",
			Allocations: []facility.RepaymentProfileAllocation{
				{DueDate: "2026-10-01"},
			},
		})

		validationErrors := validateFacilityRequest(req)

		require.Len(t, validationErrors, 1)
		assert.Equal(t, "repaymentProfiles.1.name must be unique - quarterly", validationErrors[0])
	})

	t.Run("Duplicate allocation due date within a profile", func(t *testing.T) {
		req := requestFixture()
		req.RepaymentProfiles[0].Allocations[1].DueDate = "2026-04-01"

		validationErrors := validateFacilityRequest(req)

		require.Len(t, validationErrors, 1)
		assert.Equal(t, "repaymentProfiles.0.allocations.1.dueDate must be unique - 2026-04-01", validationErrors[0])
	})

	t.Run("Same due date in different profiles is allowed", func(t *testing.T) {
		req := requestFixture()
		req.RepaymentProfiles = append(req.RepaymentProfiles, facility.RepaymentProfile{
			Name: "annual",
			Allocations: []facility.RepaymentProfileAllocation{
				{DueDate: "2026-04-01"},
			},
		})

		assert.Empty(t, validateFacilityRequest(req))
	})

	t.Run("Multiple violations reported in field order", func(t *testing.T) {
		req := requestFixture()
		req.Counterparties[1].CounterpartyURN = "00400001"
		req.RepaymentProfiles[0].Allocations[1].DueDate = "2026-04-01"

		validationErrors := validateFacilityRequest(req)

		require.Len(t, validationErrors, 2)
		assert.Contains(t, validationErrors[0], "counterparties.1")
		assert.Contains(t, validationErrors[1], "allocations.1.dueDate")
	})
}
