package assets

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
)

func GetChainsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Assets.GET("/chains", getChainsHandler(s))
}

// getChainsHandler returns the chains configured for the chain selector.
func getChainsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.Chains.List())
	}
}
