package facility

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/harborlane/facility-gateway/internal/client"
)

// collectEntityErrors scans one batch's results for entries that were not
// created and tags each with the entity kind and its position in the input
// array. Input order is preserved.
func collectEntityErrors(entityName string, results []client.ResourceResult) []EntityError {
	entityErrors := make([]EntityError, 0)
	for i, result := range results {
		if result.Created() {
			continue
		}
		entityErrors = append(entityErrors, EntityError{
			EntityName:       entityName,
			Index:            i,
			Message:          resultMessage(result),
			Status:           result.Status,
			ValidationErrors: resultValidationErrors(result),
		})
	}
	return entityErrors
}

// errorResponse builds the client-facing envelope for a non-empty aggregated
// error list. Status and message come from the first error; a generic 400 is
// normalized to the fixed facility-validation message, any other status passes
// its own message through.
func errorResponse(entityErrors []EntityError) Response {
	first := entityErrors[0]
	message := first.Message
	if first.Status == http.StatusBadRequest {
		message = MessageFacilityValidationError
	}
	return Response{
		Status: first.Status,
		Data: map[string]any{
			KeyStatusCode:       first.Status,
			KeyMessage:          message,
			KeyValidationErrors: entityErrors,
		},
	}
}

// resultMessage extracts the upstream message from a result body. Upstream
// sometimes sends a string and sometimes an array of strings.
func resultMessage(result client.ResourceResult) string {
	switch message := result.Data[KeyMessage].(type) {
	case string:
		return message
	case []any:
		parts := make([]string, 0, len(message))
		for _, m := range message {
			if s, ok := m.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

func resultValidationErrors(result client.ResourceResult) []any {
	if validationErrors, ok := result.Data[KeyValidationErrors].([]any); ok {
		return validationErrors
	}
	return nil
}

// int64Field reads a numeric identifier from a decoded JSON body.
func int64Field(data map[string]any, key string) (int64, error) {
	value, ok := data[key]
	if !ok {
		return 0, fmt.Errorf("response body missing '%s'", key)
	}
	number, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("response field '%s' is not a number", key)
	}
	return int64(number), nil
}
