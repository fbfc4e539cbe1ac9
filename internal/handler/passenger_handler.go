package handler

import (
	"github.com/AeroAndes-Airlines/service-reservation/internal/application"
	"github.com/AeroAndes-Airlines/service-reservation/internal/response"
	"github.com/gin-gonic/gin"
)

// PassengerHandler handles HTTP requests for passenger operations.
type PassengerHandler struct {
	service *application.ReservationService
}

// NewPassengerHandler creates a new PassengerHandler.
func NewPassengerHandler(service *application.ReservationService) *PassengerHandler {
	return &PassengerHandler{service: service}
}

// RegisterRoutes registers all passenger routes on the given router group.
func (h *PassengerHandler) RegisterRoutes(r *gin.RouterGroup) {
	passengers := r.Group("/api/v1/passengers")
	{
		passengers.POST("", h.RegisterPassenger)
		passengers.GET("", h.ListPassengers)
		passengers.GET("/:document", h.GetPassenger)
		passengers.GET("/:document/bookings", h.GetPassengerBookings)
	}
}

// RegisterPassenger handles POST /api/v1/passengers
func (h *PassengerHandler) RegisterPassenger(c *gin.Context) {
	var req application.RegisterPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RegisterPassenger(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListPassengers handles GET /api/v1/passengers
func (h *PassengerHandler) ListPassengers(c *gin.Context) {
	response.Success(c, h.service.ListPassengers(c.Request.Context()))
}

// GetPassenger handles GET /api/v1/passengers/:document
func (h *PassengerHandler) GetPassenger(c *gin.Context) {
	result, err := h.service.GetPassenger(c.Request.Context(), c.Param("document"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPassengerBookings handles GET /api/v1/passengers/:document/bookings
func (h *PassengerHandler) GetPassengerBookings(c *gin.Context) {
	result, err := h.service.GetPassengerBookings(c.Request.Context(), c.Param("document"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
