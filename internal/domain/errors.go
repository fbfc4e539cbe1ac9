package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a DomainError for transport-level mapping.
type ErrorCode string

const (
	// CodeValidation marks malformed field input, detected at entity
	// construction before any state mutation.
	CodeValidation ErrorCode = "VALIDATION_ERROR"

	// CodeNotFound marks a lookup by key that resolved to nothing.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeConflict marks a well-formed request that violates a registry
	// invariant (duplicate key, full capacity, duplicate active booking).
	CodeConflict ErrorCode = "CONFLICT"

	// CodeInvalidState marks a lifecycle transition that is not allowed
	// from the entity's current state.
	CodeInvalidState ErrorCode = "INVALID_STATE"
)

// DomainError is a business rule violation with a human-readable message.
// The message is surfaced to callers verbatim.
type DomainError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// NewValidationError creates a DomainError for malformed field input.
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

// NewNotFoundError creates a DomainError for a missing resource.
func NewNotFoundError(resource, key string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found: %s", resource, key)}
}

// NewConflictError creates a DomainError for an invariant violation.
func NewConflictError(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

// NewInvalidStateError creates a DomainError for a disallowed lifecycle transition.
func NewInvalidStateError(message string) *DomainError {
	return &DomainError{Code: CodeInvalidState, Message: message}
}

// CodeOf returns the error's code, or an empty code for non-domain errors.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
