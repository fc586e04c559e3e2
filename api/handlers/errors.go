// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses with a single {"error": msg} body shape

package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"anifinder-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// Client-facing messages. The API serves a Spanish-language app.
const (
	msgTitleRequired  = "El título es requerido"
	msgSearchRequired = "El parámetro search es requerido"
	msgLookupFailed   = "Error interno al buscar en AnimeFLV"
	msgAnimeNotFound  = "No se encontró el anime"
	msgUpstreamDown   = "Servicio externo no disponible"
	msgUpstreamLimit  = "Servicio externo saturado, intenta más tarde"
	msgUpstreamFailed = "Error al consultar el servicio externo"
	msgInternal       = "Error interno del servidor"
)

// ErrorBody is the response body for every error
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message"`
}

// Error implements the error interface
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorBody) GetStatus() int {
	return e.status
}

// NewErrorBody builds the error huma writes for status
func NewErrorBody(status int, msg string, errs ...error) huma.StatusError {
	// Only request validation details are safe to echo back
	var details []string
	for _, err := range errs {
		var detailer huma.ErrorDetailer
		if err != nil && stderrors.As(err, &detailer) {
			d := detailer.ErrorDetail()
			details = append(details, d.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}
	return &ErrorBody{status: status, Message: msg}
}

func init() {
	huma.NewError = NewErrorBody
}

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Errors outside the taxonomy get fallbackStatus with a generic message.
func toHumaError(err error, fallbackStatus int) error {
	if err == nil {
		return nil
	}

	// Lookup failures never expose the provider's error text
	if errors.IsLookup(err) {
		return huma.Error500InternalServerError(msgLookupFailed)
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(msgAnimeNotFound)
	}

	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		return huma.Error400BadRequest(validationErr.Message)
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable(msgUpstreamDown)
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return huma.Error429TooManyRequests(msgUpstreamLimit)
		default:
			return huma.Error502BadGateway(msgUpstreamFailed)
		}
	}

	switch fallbackStatus {
	case http.StatusBadGateway:
		return huma.Error502BadGateway(msgUpstreamFailed)
	default:
		return huma.Error500InternalServerError(msgInternal)
	}
}
