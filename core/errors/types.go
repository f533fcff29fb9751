// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects every violated field of a request.
type ValidationErrors []*ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// Fields returns the names of the violated fields in order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, v := range e {
		fields = append(fields, v.Field)
	}
	return fields
}

// ConfigurationError reports required settings that are absent.
// It is never retryable: the operator has to fix the environment.
type ConfigurationError struct {
	Missing []string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing %s; set them in the environment and restart the server",
		strings.Join(e.Missing, " or "))
}

// ProviderError represents a non-success answer from the external search provider
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	provider := e.Provider
	if provider == "" {
		provider = "search provider"
	}
	return fmt.Sprintf("%s error: %d %s", provider, e.StatusCode, strings.TrimSpace(e.Body))
}

// IsValidation checks if an error is a ValidationError or a ValidationErrors list
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var validationErrs ValidationErrors
	return errors.As(err, &validationErrs)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// AsProvider returns the ProviderError wrapped in err, if any
func AsProvider(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr, true
	}
	return nil, false
}
