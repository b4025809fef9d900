package facility

// Entity names used to tag aggregated child-creation errors. Aggregation
// always reports kinds in this order.
const (
	EntityNameCounterparty     = "counterparty"
	EntityNameFixedFee         = "fixedFee"
	EntityNameObligation       = "obligation"
	EntityNameRepaymentProfile = "repaymentProfile"
)

const (
	MessageAsyncValidationError    = "Error(s) during asynchronous validation"
	MessageFacilityValidationError = "Facility validation error(s)"
	MessageApprovedStatusError     = "Error updating facility status to approved"
	MessageErrorCreatingFacility   = "Error creating facility"
)

// Body keys read from and written to upstream payloads.
const (
	KeyFacilityID       = "facilityId"
	KeyWorkPackageID    = "workPackageId"
	KeyState            = "state"
	KeyStatusCode       = "statusCode"
	KeyMessage          = "message"
	KeyValidationErrors = "validationErrors"
)
