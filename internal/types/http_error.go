package types

import (
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
)

// Public error types, part of the API contract.
const (
	PublicHTTPErrorTypeGeneric            = "generic"
	PublicHTTPErrorTypeNotConnected       = "wallet_not_connected"
	PublicHTTPErrorTypeNotImplemented     = "capability_not_implemented"
	PublicHTTPErrorTypeModeMismatch       = "wallet_mode_mismatch"
	PublicHTTPErrorTypeBackendFailure     = "wallet_backend_failure"
	PublicHTTPErrorTypeChainNotConfigured = "chain_not_configured"
)

// PublicHTTPError is the wire representation of an API error.
type PublicHTTPError struct {
	// HTTP status code
	Code *int64 `json:"status"`
	// Short, human-readable message
	Title *string `json:"title"`
	// Type of error
	Type *string `json:"type"`
	// More detailed, human-readable, optional explanation
	Detail string `json:"detail,omitempty"`
}

// Validate checks the required fields.
func (e *PublicHTTPError) Validate() error {
	if e.Code == nil {
		return errors.New("status is required")
	}

	if e.Title == nil {
		return errors.New("title is required")
	}

	if e.Type == nil {
		return errors.New("type is required")
	}

	return nil
}

// HTTPValidationErrorDetail describes one invalid payload field.
type HTTPValidationErrorDetail struct {
	// Key of the field that failed validation
	Key *string `json:"key"`
	// Location of the failing field (body, query)
	In *string `json:"in"`
	// Localized description of the failure
	Error *string `json:"error"`
}

// PublicHTTPValidationError extends PublicHTTPError with per-field
// details.
type PublicHTTPValidationError struct {
	PublicHTTPError

	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// NewPublicHTTPError assembles a wire error payload.
func NewPublicHTTPError(code int, errorType string, title string) *PublicHTTPError {
	return &PublicHTTPError{
		Code:  swag.Int64(int64(code)),
		Title: swag.String(title),
		Type:  swag.String(errorType),
	}
}
