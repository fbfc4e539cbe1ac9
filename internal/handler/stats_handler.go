package handler

import (
	"github.com/AeroAndes-Airlines/service-reservation/internal/application"
	"github.com/AeroAndes-Airlines/service-reservation/internal/response"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for system-wide statistics.
type StatsHandler struct {
	service *application.ReservationService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *application.ReservationService) *StatsHandler {
	return &StatsHandler{service: service}
}

// RegisterRoutes registers the stats route on the given router group.
func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/stats", h.GetStats)
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	response.Success(c, h.service.GetStats(c.Request.Context()))
}
