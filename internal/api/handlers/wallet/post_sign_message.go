package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
)

func PostSignMessageRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/sign", postSignMessageHandler(s))
}

// postSignMessageHandler signs a personal message with the active
// backend.
func postSignMessageHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.SignMessageRequest
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		message := swag.StringValue(body.Message)

		signature, err := s.Adapter.SignMessage(ctx, message)
		if err != nil {
			s.Metrics.SignTotal.WithLabelValues("failure").Inc()
			log.Debug().Err(err).Msg("Failed to sign message")

			return mapWalletError(err)
		}

		s.Metrics.SignTotal.WithLabelValues("success").Inc()

		return util.ValidateAndReturn(c, http.StatusOK, &types.SignMessageResponse{
			Signature: signature,
			Message:   message,
		})
	}
}
