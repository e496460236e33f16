package httperrors

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
)

// HandlerConfig controls how much internal detail leaks to clients.
type HandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig returns an echo error handler translating
// every error flavor into the public payload.
func HTTPErrorHandlerWithConfig(config HandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromEchoContext(c)

		var payload any
		code := http.StatusInternalServerError

		switch e := err.(type) {
		case *HTTPValidationError:
			code = int(*e.Code)
			payload = &e.PublicHTTPValidationError

			if e.Internal != nil {
				log.Debug().Err(e.Internal).Msg("Validation error")
			}
		case *HTTPError:
			code = int(*e.Code)
			payload = &e.PublicHTTPError

			if e.Internal != nil {
				log.Debug().Err(e.Internal).Msg("HTTP error")
			}
		case *echo.HTTPError:
			code = e.Code
			title := http.StatusText(e.Code)

			if msg, ok := e.Message.(string); ok && !config.HideInternalServerErrorDetails {
				title = msg
			}

			payload = types.NewPublicHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, title)

			if e.Internal != nil {
				log.Debug().Err(e.Internal).Msg("Echo HTTP error")
			}
		default:
			log.Error().Err(err).Msg("Unhandled error")

			title := http.StatusText(code)
			if !config.HideInternalServerErrorDetails {
				title = err.Error()
			}

			payload = &types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Title: swag.String(title),
				Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
			}
		}

		if writeErr := c.JSON(code, payload); writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
