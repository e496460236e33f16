package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
)

func GetWalletStateRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/state", getWalletStateHandler(s))
}

// getWalletStateHandler returns the last synchronized wallet state
// snapshot without touching the backends.
func getWalletStateHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.Sync.State())
	}
}
