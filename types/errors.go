package types

import (
	"encoding/json"
	"fmt"
)

// ValidationError means the caller omitted or malformed a required input.
// Mapped to HTTP 400 by the handlers; no upstream call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError means the processor API returned a non-2xx response or the
// transport failed. The original response body, when present, is kept verbatim
// so handlers can forward it under the `details` key.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s: upstream returned status %d", e.Operation, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ConfigError means the relay itself is misconfigured (missing credentials).
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}
