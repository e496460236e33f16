package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func PostLogoutRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/logout", postLogoutHandler(s))
}

// postLogoutHandler ends the EOA session. The smart account backend
// keeps its own connection, mirroring the asymmetry of the login flow.
func postLogoutHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		if err := s.Adapter.Logout(ctx); err != nil {
			log.Debug().Err(err).Msg("Failed to logout")
			return mapWalletError(err)
		}

		if err := s.Sync.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Post-logout refresh failed")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
