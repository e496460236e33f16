package util

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable payloads check their own field constraints after binding.
type Validatable interface {
	Validate() error
}

// BindAndValidateBody binds the JSON request body into v and runs its
// validation if it implements Validatable. Binding and validation
// failures map to 400 responses.
func BindAndValidateBody(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Wrap(err, "failed to bind request body").Error())
	}

	return validate(v)
}

// BindAndValidateQueryParams binds the query parameters into v and runs
// its validation if it implements Validatable.
func BindAndValidateQueryParams(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Wrap(err, "failed to bind query params").Error())
	}

	return validate(v)
}

func validate(v any) error {
	validatable, ok := v.(Validatable)
	if !ok {
		return nil
	}

	if err := validatable.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// ValidateAndReturn validates the response payload if it implements
// Validatable and writes it as JSON with the given status code.
func ValidateAndReturn(c echo.Context, code int, v any) error {
	validatable, ok := v.(Validatable)
	if ok {
		if err := validatable.Validate(); err != nil {
			return errors.Wrap(err, "response payload validation failed")
		}
	}

	return c.JSON(code, v)
}
