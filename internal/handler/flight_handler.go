package handler

import (
	"github.com/AeroAndes-Airlines/service-reservation/internal/application"
	"github.com/AeroAndes-Airlines/service-reservation/internal/response"
	"github.com/gin-gonic/gin"
)

// FlightHandler handles HTTP requests for flight operations.
type FlightHandler struct {
	service *application.ReservationService
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(service *application.ReservationService) *FlightHandler {
	return &FlightHandler{service: service}
}

// RegisterRoutes registers all flight routes on the given router group.
func (h *FlightHandler) RegisterRoutes(r *gin.RouterGroup) {
	flights := r.Group("/api/v1/flights")
	{
		flights.POST("", h.AddFlight)
		flights.GET("", h.ListFlights)
		flights.GET("/:number", h.GetFlight)
		flights.GET("/:number/bookings", h.GetFlightBookings)
	}
}

// AddFlight handles POST /api/v1/flights
func (h *FlightHandler) AddFlight(c *gin.Context) {
	var req application.AddFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddFlight(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListFlights handles GET /api/v1/flights
func (h *FlightHandler) ListFlights(c *gin.Context) {
	response.Success(c, h.service.ListFlights(c.Request.Context()))
}

// GetFlight handles GET /api/v1/flights/:number
func (h *FlightHandler) GetFlight(c *gin.Context) {
	result, err := h.service.GetFlight(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetFlightBookings handles GET /api/v1/flights/:number/bookings
func (h *FlightHandler) GetFlightBookings(c *gin.Context) {
	result, err := h.service.GetFlightBookings(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
