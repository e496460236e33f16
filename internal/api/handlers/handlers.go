package handlers

import (
	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/api/handlers/assets"
	"github/walletpanel/go-wallet-panel/internal/api/handlers/common"
	"github/walletpanel/go-wallet-panel/internal/api/handlers/wallet"
)

// AttachAllRoutes attaches all handlers to their routing group.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		common.GetMetricsRoute(s),

		assets.GetChainsRoute(s),
		assets.GetTokensRoute(s),

		wallet.GetWalletInfoRoute(s),
		wallet.GetWalletStateRoute(s),
		wallet.PostRefreshRoute(s),
		wallet.PostSignMessageRoute(s),
		wallet.PostSendTransactionRoute(s),
		wallet.GetMaxAmountRoute(s),
		wallet.PostSwitchChainRoute(s),
		wallet.GetPreferencesRoute(s),
		wallet.PutPreferencesRoute(s),
		wallet.PostLoginRoute(s),
		wallet.PostLogoutRoute(s),
	}
}
