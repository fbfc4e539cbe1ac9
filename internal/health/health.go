package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves liveness and readiness probes.
type Handler struct {
	service string
}

// NewHandler creates a health Handler for the named service.
func NewHandler(service string) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers /health and /ready on the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service})
}

// Ready handles GET /ready. All state is in memory, so the service is ready
// as soon as it is serving.
func (h *Handler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "service": h.service})
}
