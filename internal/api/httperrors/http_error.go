package httperrors

import (
	"fmt"

	"github.com/go-openapi/swag"
	"github/walletpanel/go-wallet-panel/internal/types"
)

// HTTPError wraps the public wire payload so it can travel as an error
// through echo's error handler.
type HTTPError struct {
	types.PublicHTTPError

	Internal       error
	AdditionalData map[string]any
}

// NewHTTPError builds a new HTTPError with the given status code, type
// and title.
func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: *types.NewPublicHTTPError(code, errorType, title),
	}
}

// NewHTTPErrorWithDetail builds a new HTTPError with an additional
// human-readable detail message.
func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string) *HTTPError {
	e := NewHTTPError(code, errorType, title)
	e.Detail = detail

	return e
}

func (e *HTTPError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("HTTPError %d (%s): %s, %v", *e.Code, *e.Type, *e.Title, e.Internal)
	}

	return fmt.Sprintf("HTTPError %d (%s): %s", *e.Code, *e.Type, *e.Title)
}

// HTTPValidationError bundles per-field validation failures.
type HTTPValidationError struct {
	types.PublicHTTPValidationError

	Internal error
}

// NewHTTPValidationError builds a new validation error with the given
// details.
func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError:  *types.NewPublicHTTPError(code, errorType, title),
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d fields)", *e.Code, *e.Type, *e.Title, len(e.ValidationErrors))
}

// NewValidationErrorDetail builds a single field detail for body
// payloads.
func NewValidationErrorDetail(key string, message string) *types.HTTPValidationErrorDetail {
	return &types.HTTPValidationErrorDetail{
		Key:   swag.String(key),
		In:    swag.String("body"),
		Error: swag.String(message),
	}
}
