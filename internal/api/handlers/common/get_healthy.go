package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler is the liveness probe. It reports the last wallet
// refresh error if the state carries one, but stays healthy as long as
// the server itself is up.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not healthy.")
		}

		if state := s.Sync.State(); state.Error != "" {
			util.LogFromEchoContext(c).Warn().Str("state_error", state.Error).Msg("Healthy probe observed wallet refresh error")
		}

		return c.String(http.StatusOK, "OK.")
	}
}
