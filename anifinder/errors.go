// ABOUTME: Error types and handling for the AniFinder library
// ABOUTME: Wraps core errors into a single structured error with a type

package anifinder

import (
	stderrors "errors"
	"fmt"

	coreerrors "anifinder-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates no anime matched a metadata search
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeUpstream indicates AnimeFLV, AniList or the translator failed
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// wrapError converts a core error into an *Error. The cause stays reachable
// through errors.As for callers that need the details.
func wrapError(err error) error {
	var lookupErr *coreerrors.LookupError
	var validationErr *coreerrors.ValidationError
	var notFoundErr *coreerrors.NotFoundError
	var apiErr *coreerrors.ExternalAPIError

	switch {
	case stderrors.As(err, &lookupErr):
		return NewError(ErrorTypeUpstream, "AnimeFLV search failed").
			WithCause(err).
			WithContext("query", lookupErr.Query)
	case stderrors.As(err, &validationErr):
		return NewError(ErrorTypeValidation, validationErr.Message).
			WithCause(err).
			WithContext("field", validationErr.Field)
	case stderrors.As(err, &notFoundErr):
		return NewError(ErrorTypeNotFound, "anime not found").
			WithCause(err).
			WithContext("search", notFoundErr.ID)
	case stderrors.As(err, &apiErr):
		return NewError(ErrorTypeUpstream, apiErr.API+" request failed").
			WithCause(err).
			WithContext("status", apiErr.StatusCode)
	default:
		return NewError(ErrorTypeInternal, "unexpected error").WithCause(err)
	}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsUpstreamError checks if an error came from an upstream service
func IsUpstreamError(err error) bool {
	return isType(err, ErrorTypeUpstream)
}
