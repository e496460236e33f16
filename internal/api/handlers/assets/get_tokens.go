package assets

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
)

func GetTokensRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Assets.GET("/tokens", getTokensHandler(s))
}

// getTokensHandler returns the ERC-20 tokens tracked by the panel.
func getTokensHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.Assets.Tokens)
	}
}
