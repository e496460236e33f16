package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func GetWalletInfoRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("", getWalletInfoHandler(s))
}

// getWalletInfoHandler returns the composite wallet info derived from
// both backends.
func getWalletInfoHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		info, err := s.Adapter.GetWalletInfo(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to assemble wallet info")
			return mapWalletError(err)
		}

		return c.JSON(http.StatusOK, info)
	}
}
