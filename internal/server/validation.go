package server

import (
	"fmt"

	"github.com/harborlane/facility-gateway/internal/facility"
)

// validateFacilityRequest enforces the cross-item request invariants that gin
// binding tags cannot express: counterparty URNs unique within the request,
// repayment-profile names unique, and allocation due dates unique within each
// profile. Returns one message per violation, in field order.
func validateFacilityRequest(req *facility.CreateFacilityRequest) []string {
	validationErrors := make([]string, 0)

	seenURNs := make(map[string]struct{}, len(req.Counterparties))
	for i, counterparty := range req.Counterparties {
		if _, seen := seenURNs[counterparty.CounterpartyURN]; seen {
			validationErrors = append(validationErrors,
				fmt.Sprintf("counterparties.%d.counterpartyUrn must be unique - %s", i, counterparty.CounterpartyURN))
			continue
		}
		seenURNs[counterparty.CounterpartyURN] = struct{}{}
	}

	seenNames := make(map[string]struct{}, len(req.RepaymentProfiles))
	for i, profile := range req.RepaymentProfiles {
		if _, seen := seenNames[profile.Name]; seen {
			validationErrors = append(validationErrors,
				fmt.Sprintf("repaymentProfiles.%d.name must be unique - %s", i, profile.Name))
		} else {
			seenNames[profile.Name] = struct{}{}
		}

		seenDueDates := make(map[string]struct{}, len(profile.Allocations))
		for j, allocation := range profile.Allocations {
			if _, seen := seenDueDates[allocation.DueDate]; seen {
				validationErrors = append(validationErrors,
					fmt.Sprintf("repaymentProfiles.%d.allocations.%d.dueDate must be unique - %s", i, j, allocation.DueDate))
				continue
			}
			seenDueDates[allocation.DueDate] = struct{}{}
		}
	}

	return validationErrors
}
