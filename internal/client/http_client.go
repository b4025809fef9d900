package client

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/harborlane/facility-gateway/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// HTTPClient is a base HTTP client using resty for API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an HTTP error response from the remote API.
// It exposes the status code so callers can detect specific cases (e.g., 404)
// without parsing text messages.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// acceptableStatuses are the upstream status codes treated as data rather than
// transport failures. Client errors in this set carry structured bodies
// (validation errors, messages) that the orchestration maps into its own
// responses; anything outside the set is an unacceptable condition.
var acceptableStatuses = []int{200, 201, 400, 401, 404}

// NewHTTPClient creates a new HTTPClient with basic auth and JSON headers.
func NewHTTPClient(baseURL, username, password string) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &HTTPClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json").
			SetBasicAuth(username, password).
			SetTimeout(30 * time.Second),
	}
}

// DoReq performs an HTTP request with the given method, endpoint, body, and query params.
// Any status >= 400 is returned as an *HTTPError. Logs errors for 4xx/5xx
// responses and truncates long bodies.
func (c *HTTPClient) DoReq(ctx context.Context, method, endpoint string, body any, params map[string]string) (*resty.Response, error) {
	response, err := c.execute(ctx, method, endpoint, body, params)
	if err != nil {
		return nil, err
	}

	// When status >= 400, log differently for 404 (common existence check) vs other errors
	if response.StatusCode() >= 400 {
		responseBody := truncateBody(response.String())
		logErrorResponse(method, response, responseBody)
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: responseBody}
	}

	return response, nil
}

// DoResource performs an HTTP request under the resource-client contract: any
// response whose status is in the acceptable set is returned as a
// ResourceResult, 4xx included. Only transport failures and statuses outside
// the set produce an error.
func (c *HTTPClient) DoResource(ctx context.Context, method, endpoint string, body any) (ResourceResult, error) {
	response, err := c.execute(ctx, method, endpoint, body, nil)
	if err != nil {
		return ResourceResult{}, err
	}

	status := response.StatusCode()
	if !slices.Contains(acceptableStatuses, status) {
		responseBody := truncateBody(response.String())
		logErrorResponse(method, response, responseBody)
		return ResourceResult{}, &HTTPError{StatusCode: status, Body: responseBody}
	}

	result := ResourceResult{Status: status, Data: map[string]any{}}
	raw := response.Bytes()
	if len(raw) > 0 {
		// Non-object bodies (arrays, scalars) are left out of Data; callers
		// needing them use DoReq and decode the raw bytes themselves.
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err == nil {
			result.Data = data
		}
	}

	utils.Logger.Debug("Resource request completed",
		zap.String("method", method),
		zap.String("url", response.Request.URL),
		zap.Int("status_code", status))

	return result, nil
}

func (c *HTTPClient) execute(ctx context.Context, method, endpoint string, body any, params map[string]string) (*resty.Response, error) {
	request := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetQueryParams(params)

	utils.Logger.Debug("HTTP request start",
		zap.String("method", method),
		zap.String("endpoint", endpoint))

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	if err != nil {
		utils.Logger.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}

	utils.Logger.Debug("HTTP request completed",
		zap.String("method", method),
		zap.String("url", response.Request.URL),
		zap.Int("status_code", response.StatusCode()),
		zap.Duration("duration", time.Since(start)))

	return response, nil
}

func truncateBody(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 1000 {
		body = body[:1000] + "…"
	}
	return body
}

func logErrorResponse(method string, response *resty.Response, responseBody string) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", response.Request.URL),
		zap.Int("status_code", response.StatusCode()),
		zap.String("body", responseBody),
	}
	switch {
	case response.StatusCode() == 404:
		// 404 is often used to detect non-existence; quieter debug-level log to reduce noise
		utils.Logger.Debug("API returned 404 (resource not found)", fields...)
	case response.StatusCode() >= 500:
		// Server errors are noteworthy
		utils.Logger.Error("API error response (server)", fields...)
	default:
		// Client errors (other than 404) are warnings
		utils.Logger.Warn("API error response (client)", fields...)
	}
}
