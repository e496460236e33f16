package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func PutPreferencesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.PUT("/preferences", putPreferencesHandler(s))
}

// putPreferencesHandler updates the adapter preference flags. Changing
// them may switch the active signer, so the wallet state is refreshed
// before responding.
func putPreferencesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.UpdatePreferencesRequest
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if body.PreferSmartAccount != nil {
			if err := s.Adapter.SetPreferSmartAccount(*body.PreferSmartAccount); err != nil {
				log.Debug().Err(err).Msg("Failed to update smart account preference")
				return mapWalletError(err)
			}
		}

		if body.SponsoredEnabled != nil {
			if err := s.Adapter.SetSponsored(*body.SponsoredEnabled); err != nil {
				log.Debug().Err(err).Msg("Failed to update sponsorship preference")
				return mapWalletError(err)
			}
		}

		if err := s.Sync.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Post-preferences refresh failed")
		}

		return util.ValidateAndReturn(c, http.StatusOK, preferencesResponse(s))
	}
}
