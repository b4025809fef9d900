package server

const (
	HealthEndpoint = "/health"
	FacilitiesPath = "/facilities"
	CurrenciesPath = "/currencies"
)

const (
	StatusHealthy = "healthy"
)

const (
	MessageInvalidRequestBody = "Invalid request body"
	MessageInvalidToken       = "Invalid token"
	MessageBadRequest         = "Bad request"
	MessageInternalError      = "Internal server error"
)

const (
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-Id"
)
