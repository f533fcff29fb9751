// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP statuses and renders the {ok:false,error} envelope

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	apperrors "leadsearch-api/core/errors"
)

// ErrorEnvelope is the body of every failed request
type ErrorEnvelope struct {
	status  int
	OK      bool     `json:"ok"`
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *ErrorEnvelope) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorEnvelope) GetStatus() int {
	return e.status
}

// UseErrorEnvelope makes huma render every error, including its own request
// validation failures, as an ErrorEnvelope. Validation failures are reported
// as 400 rather than huma's 422. Call it before registering routes.
func UseErrorEnvelope() {
	huma.NewError = newErrorEnvelope
}

// badRequestContext writes 400 wherever huma would write 422
type badRequestContext struct {
	humaContext
}

// humaContext names the embedded field so it does not shadow Context()
type humaContext = huma.Context

func (c badRequestContext) SetStatus(code int) {
	if code == http.StatusUnprocessableEntity {
		code = http.StatusBadRequest
	}
	c.humaContext.SetStatus(code)
}

// remapValidationStatus is an operation middleware. huma writes the status it
// validated with, not the one carried by the error, so the remap happens here.
func remapValidationStatus(ctx huma.Context, next func(huma.Context)) {
	next(badRequestContext{ctx})
}

func newErrorEnvelope(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	var details []string
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		var fieldErr *apperrors.ValidationError
		switch {
		case errors.As(err, &detailer):
			d := detailer.ErrorDetail()
			if d.Location != "" {
				details = append(details, d.Location+": "+d.Message)
			} else {
				details = append(details, d.Message)
			}
		case errors.As(err, &fieldErr):
			details = append(details, fieldErr.Field+": "+fieldErr.Message)
		default:
			details = append(details, err.Error())
		}
	}

	return &ErrorEnvelope{
		status:  status,
		Message: msg,
		Details: details,
	}
}

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs apperrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		errs := make([]error, len(validationErrs))
		for i, v := range validationErrs {
			errs[i] = v
		}
		return huma.Error400BadRequest(err.Error(), errs...)
	}

	if apperrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error(), err)
	}

	// Missing credentials are an operator problem, not a client one.
	if apperrors.IsConfiguration(err) {
		return huma.Error500InternalServerError(err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Search timed out", err)
	}

	if providerErr, ok := apperrors.AsProvider(err); ok {
		if providerErr.StatusCode == http.StatusGatewayTimeout {
			return huma.Error504GatewayTimeout("Search timed out", providerErr)
		}
		return huma.Error500InternalServerError("Search provider request failed", providerErr)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
