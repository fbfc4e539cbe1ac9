package response

import (
	"errors"
	"net/http"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"github.com/gin-gonic/gin"
)

// APIError is the error payload in a failed response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// Success writes a 200 response with the given data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &APIError{Code: string(domain.CodeValidation), Message: message},
	})
}

// Error maps a domain error to its HTTP status and writes the failure
// envelope. The domain message passes through verbatim; unknown errors
// become an opaque 500.
func Error(c *gin.Context, err error) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   &APIError{Code: "INTERNAL_ERROR", Message: "internal server error"},
		})
		return
	}

	status := http.StatusInternalServerError
	switch de.Code {
	case domain.CodeValidation:
		status = http.StatusBadRequest
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeConflict, domain.CodeInvalidState:
		status = http.StatusConflict
	}

	c.JSON(status, Envelope{
		Success: false,
		Error:   &APIError{Code: string(de.Code), Message: de.Message},
	})
}
