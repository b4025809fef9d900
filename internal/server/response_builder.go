// internal/server/response_builder.go
package server

import "net/http"

// ErrorEnvelope is the standard error body for gateway-originated failures.
// Orchestration outcomes carry their own bodies and bypass this type.
type ErrorEnvelope struct {
	StatusCode       int      `json:"statusCode"`
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// badRequestEnvelope builds a 400 envelope carrying validation error strings.
func badRequestEnvelope(validationErrors []string) ErrorEnvelope {
	return ErrorEnvelope{
		StatusCode:       http.StatusBadRequest,
		Message:          MessageBadRequest,
		ValidationErrors: validationErrors,
	}
}

// internalErrorEnvelope builds a 500 envelope with the given message.
func internalErrorEnvelope(message string) ErrorEnvelope {
	return ErrorEnvelope{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}
