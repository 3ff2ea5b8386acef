package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"irpfdecl/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	declarationService service.DeclarationService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(declarationService service.DeclarationService) *HealthHandler {
	return &HealthHandler{declarationService: declarationService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.declarationService.SourceConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "data source not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
