package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func GetVersionRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/version", getVersionHandler(s))
}

func getVersionHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, types.NewGetVersionResponse(config.GetFormattedBuildArgs()))
	}
}
