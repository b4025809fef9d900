package server

import (
	"github.com/gin-gonic/gin"
	"github.com/harborlane/facility-gateway/internal/client"
	"github.com/harborlane/facility-gateway/internal/config"
)

// NewRouter builds the Gin router with the configured API handlers.
func NewRouter(cfg *config.Config, orchestrator FacilityCreator, ledger client.LedgerClient) *gin.Engine {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	handler := newHandler(cfg, orchestrator, ledger)

	router.GET(HealthEndpoint, handler.health)
	router.POST(FacilitiesPath, authMiddleware(cfg.APIToken), handler.createFacility)
	router.GET(CurrenciesPath, authMiddleware(cfg.APIToken), handler.getCurrencies)
	router.GET(CurrenciesPath+"/:id", authMiddleware(cfg.APIToken), handler.getCurrency)

	return router
}
