package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func GetPreferencesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/preferences", getPreferencesHandler(s))
}

func getPreferencesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, preferencesResponse(s))
	}
}

func preferencesResponse(s *api.Server) *types.PreferencesResponse {
	return &types.PreferencesResponse{
		Mode:               string(s.Adapter.Mode()),
		PreferSmartAccount: s.Adapter.PreferSmartAccount(),
		SponsoredEnabled:   s.Adapter.IsSponsoredEnabled(),
		SmartAccountActive: s.Adapter.IsSmartAccountActive(),
	}
}
