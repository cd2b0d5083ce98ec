package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// APIError is the error body of every failed request
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

func NewServiceUnavailableError(message string, details ...string) *APIError {
	return newError(ErrCodeServiceUnavailable, message, details)
}

// FromDomainError maps pipeline errors to an HTTP status and body.
// ok is false for errors that have no client-facing meaning.
func FromDomainError(err error) (status int, apiErr *APIError, ok bool) {
	var existing *APIError
	switch {
	case errors.As(err, &existing):
		return statusOf(existing.Code), existing, true
	case errors.Is(err, domain.ErrIndexNotFound):
		return http.StatusNotFound, NewNotFoundError("Index record not found"), true
	case errors.Is(err, domain.ErrArtworkNotFound):
		return http.StatusNotFound, NewNotFoundError("Artwork not found"), true
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound, NewNotFoundError("Indexing run not found"), true
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, NewConflictError("Invalid import status transition", err.Error()), true
	case errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrUnsupportedBlockchain),
		errors.Is(err, domain.ErrInvalidObservationType),
		errors.Is(err, domain.ErrMissingTokenKey):
		return http.StatusUnprocessableEntity, NewValidationError(err.Error()), true
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, NewServiceUnavailableError("Storage unavailable"), true
	}
	return http.StatusInternalServerError, nil, false
}

func statusOf(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
