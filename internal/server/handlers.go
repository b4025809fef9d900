package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/harborlane/facility-gateway/internal/config"
	"github.com/harborlane/facility-gateway/internal/facility"
	"github.com/harborlane/facility-gateway/internal/utils"
	"go.uber.org/zap"
)

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	cfg          *config.Config
	orchestrator FacilityCreator
	ledger       client.LedgerClient
}

// newHandler constructs a Handler with attached dependencies.
func newHandler(cfg *config.Config, orchestrator FacilityCreator, ledger client.LedgerClient) *Handler {
	return &Handler{
		cfg:          cfg,
		orchestrator: orchestrator,
		ledger:       ledger,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}

// createFacility parses and validates the aggregate request, then hands it to
// the orchestrator. The orchestration response carries its own status code and
// body; only binding failures, invariant violations, and fatal orchestration
// errors are shaped here.
func (h *Handler) createFacility(c *gin.Context) {
	var req facility.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Logger.Error("Invalid request body",
			zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			StatusCode:       http.StatusBadRequest,
			Message:          MessageInvalidRequestBody,
			ValidationErrors: []string{err.Error()},
		})
		return
	}

	if validationErrors := validateFacilityRequest(&req); len(validationErrors) > 0 {
		utils.Logger.Info("Request failed invariant validation",
			zap.Int("error_count", len(validationErrors)))
		c.JSON(http.StatusBadRequest, badRequestEnvelope(validationErrors))
		return
	}

	response, err := h.orchestrator.Create(c.Request.Context(), &req)
	if err != nil {
		// The orchestrator has already wrapped the cause; callers get the
		// generic message only.
		var creationErr *facility.CreationError
		if errors.As(err, &creationErr) {
			c.JSON(http.StatusInternalServerError, internalErrorEnvelope(creationErr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, internalErrorEnvelope(MessageInternalError))
		return
	}

	c.JSON(response.Status, response.Data)
}

func (h *Handler) getCurrencies(c *gin.Context) {
	currencies, err := h.ledger.GetCurrencies(c.Request.Context())
	if err != nil {
		utils.Logger.Error("Failed to fetch currencies",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, internalErrorEnvelope(MessageInternalError))
		return
	}
	c.JSON(http.StatusOK, currencies)
}

func (h *Handler) getCurrency(c *gin.Context) {
	id := c.Param("id")
	currency, err := h.ledger.GetCurrency(c.Request.Context(), id)
	if err != nil {
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency %s not found", id)})
			return
		}
		utils.Logger.Error("Failed to fetch currency",
			zap.String("currency_id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, internalErrorEnvelope(MessageInternalError))
		return
	}
	c.JSON(http.StatusOK, currency)
}

func authMiddleware(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		expectedAuth := fmt.Sprintf("Bearer %s", expectedToken)
		if authHeader != expectedAuth {
			utils.Logger.Warn("Unauthorized access attempt",
				zap.String(utils.FieldPath, c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": MessageInvalidToken})
			c.Abort()
			return
		}
		c.Next()
	}
}

// requestIDMiddleware assigns a correlation id to every request, echoing an
// incoming one when the caller supplied it.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)
		utils.Logger.Debug("Request received",
			zap.String(utils.FieldRequestID, requestID),
			zap.String(utils.FieldPath, c.Request.URL.Path))
		c.Next()
	}
}
