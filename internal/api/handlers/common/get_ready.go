package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler returns the readiness of the service. It only checks
// that all server components were initialized, it does not probe the
// wallet backends.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
