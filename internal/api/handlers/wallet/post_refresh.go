package wallet

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func PostRefreshRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/refresh", postRefreshHandler(s))
}

// postRefreshHandler forces a full wallet state refresh cycle and
// returns the committed snapshot.
func postRefreshHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		start := time.Now()
		err := s.Sync.Refresh(ctx)

		s.Metrics.RefreshTotal.Inc()
		s.Metrics.RefreshDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			s.Metrics.RefreshFailures.Inc()
			log.Warn().Err(err).Msg("Wallet state refresh failed")

			return mapWalletError(err)
		}

		return c.JSON(http.StatusOK, s.Sync.State())
	}
}
