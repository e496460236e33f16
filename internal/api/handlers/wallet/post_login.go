package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func PostLoginRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/login", postLoginHandler(s))
}

// postLoginHandler opens the EOA backend's login flow. Smart account
// sessions always piggyback on an EOA login.
func postLoginHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		if err := s.Adapter.Login(ctx); err != nil {
			log.Debug().Err(err).Msg("Failed to start login")
			return mapWalletError(err)
		}

		if err := s.Sync.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Post-login refresh failed")
		}

		info, err := s.Adapter.GetWalletInfo(ctx)
		if err != nil {
			return mapWalletError(err)
		}

		return c.JSON(http.StatusOK, info)
	}
}
