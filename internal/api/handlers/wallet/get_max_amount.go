package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/api/httperrors"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/send"
)

func GetMaxAmountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/send/max-amount", getMaxAmountHandler(s))
}

// getMaxAmountHandler returns the full formatted balance of an asset,
// backing the send form's "Max" shortcut.
func getMaxAmountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		assetID := c.QueryParam("assetId")
		if assetID == "" {
			assetID = send.AssetNative
		}

		amount, err := send.NewBuilder(s.Sync.State()).MaxAmount(assetID)
		if err != nil {
			return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Unknown asset.", err.Error())
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.MaxAmountResponse{
			AssetID: assetID,
			Amount:  amount,
		})
	}
}
