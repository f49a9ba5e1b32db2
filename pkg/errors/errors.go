// Package errors defines custom error types and error handling utilities for the
// Risk Banking scoring service. Errors carry a machine-readable code, an HTTP
// status, and an optional cause chain so the HTTP boundary can map every
// failure to a distinct, documented response.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JulienRip/riskbanking/pkg/constants"
)

// AppError represents a structured application error.
type AppError interface {
	error

	// Code returns the machine-readable error code.
	Code() constants.ErrorCode

	// HTTPStatus returns the HTTP status code the error maps to.
	HTTPStatus() int

	// Description returns a human-readable description of the error class.
	Description() string

	// Unwrap returns the underlying error for error chain support.
	Unwrap() error

	// WithCause attaches a cause error and returns a copy.
	WithCause(cause error) AppError

	// WithMessagef replaces the message with a formatted one and returns a copy.
	WithMessagef(format string, args ...interface{}) AppError
}

// baseError is the internal implementation of AppError.
type baseError struct {
	code        constants.ErrorCode
	httpStatus  int
	description string
	message     string
	cause       error
}

// Error implements the error interface.
func (e *baseError) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.description
}

// Code returns the machine-readable error code.
func (e *baseError) Code() constants.ErrorCode {
	return e.code
}

// HTTPStatus returns the HTTP status code.
func (e *baseError) HTTPStatus() int {
	return e.httpStatus
}

// Description returns the error description.
func (e *baseError) Description() string {
	return e.description
}

// Unwrap returns the underlying cause error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// WithCause attaches a cause error to a copy of the error.
func (e *baseError) WithCause(cause error) AppError {
	clone := *e
	clone.cause = cause
	return &clone
}

// WithMessagef replaces the message on a copy of the error.
func (e *baseError) WithMessagef(format string, args ...interface{}) AppError {
	clone := *e
	clone.message = fmt.Sprintf(format, args...)
	return &clone
}

// New creates a new AppError with the specified parameters.
func New(code constants.ErrorCode, httpStatus int, description string, message string) AppError {
	return &baseError{
		code:        code,
		httpStatus:  httpStatus,
		description: description,
		message:     message,
	}
}

// ================================================================================
// Predefined Error Constructors
// ================================================================================

// ErrInvalidRequest creates an invalid_request error for a missing or
// malformed request parameter.
func ErrInvalidRequest(message string) AppError {
	return New(
		constants.ErrCodeInvalidRequest,
		http.StatusBadRequest,
		"The request is missing a required parameter or includes an invalid parameter value.",
		message,
	)
}

// ErrClientNotFound creates a client_not_found error for an identifier that is
// absent from a non-empty dataset.
func ErrClientNotFound(clientID int64) AppError {
	return New(
		constants.ErrCodeClientNotFound,
		http.StatusNotFound,
		"The requested client identifier does not exist in the dataset.",
		fmt.Sprintf("client %d not found in dataset", clientID),
	)
}

// ErrDatasetUnavailable creates a dataset_unavailable error for a missing or
// empty dataset. This is deliberately distinct from client_not_found.
func ErrDatasetUnavailable(path string) AppError {
	return New(
		constants.ErrCodeDatasetUnavailable,
		http.StatusBadRequest,
		"The dataset is missing or empty.",
		fmt.Sprintf("dataset unavailable or empty: %s", path),
	)
}

// ErrCache creates a cache_error for a response cache backend failure.
func ErrCache(message string) AppError {
	return New(
		constants.ErrCodeCache,
		http.StatusInternalServerError,
		"The response cache backend failed.",
		message,
	)
}

// ErrInternal creates an internal_error for an unexpected fault.
func ErrInternal(message string) AppError {
	return New(
		constants.ErrCodeInternal,
		http.StatusInternalServerError,
		"An unexpected internal error occurred.",
		message,
	)
}

// ================================================================================
// Inspection Helpers
// ================================================================================

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code constants.ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code() == code
	}
	return false
}

// HTTPStatus returns the HTTP status for err, falling back to 500 for
// errors that do not carry one.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
