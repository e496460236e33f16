package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func PostSwitchChainRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/switch-chain", postSwitchChainHandler(s))
}

// postSwitchChainHandler asks the active backend to move to another
// chain and re-synchronizes the wallet state on success.
func postSwitchChainHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.SwitchChainRequest
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		chainID := swag.Int64Value(body.ChainID)

		if err := s.Adapter.SwitchChain(ctx, chainID); err != nil {
			log.Debug().Err(err).Int64("chain_id", chainID).Msg("Failed to switch chain")
			return mapWalletError(err)
		}

		if err := s.Sync.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Post-switch refresh failed")
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.SwitchChainResponse{ChainID: chainID})
	}
}
