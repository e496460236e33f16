package wallet

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/send"
)

func PostSendTransactionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/send", postSendTransactionHandler(s))
}

// postSendTransactionHandler runs the full send flow: validate the form
// against the current state snapshot, encode the transaction and submit
// it through the active backend.
func postSendTransactionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.SendTransactionRequest
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		input := send.Input{
			Recipient:    body.Recipient,
			Amount:       body.Amount,
			AssetID:      body.AssetID,
			UseSponsored: body.UseSponsored,
		}

		builder := send.NewBuilder(s.Sync.State())

		lang := s.I18n.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))

		if validationErrs := builder.Validate(input); len(validationErrs) > 0 {
			return newSendValidationError(s, lang, validationErrs)
		}

		result, err := builder.Submit(ctx, s.Adapter, input)
		if err != nil {
			s.Metrics.SendTotal.WithLabelValues("failure").Inc()

			var vErr *send.ValidationError
			if errors.As(err, &vErr) {
				return newSendValidationError(s, lang, []*send.ValidationError{vErr})
			}

			log.Debug().Err(err).Msg("Failed to submit transaction")

			return mapWalletError(err)
		}

		s.Metrics.SendTotal.WithLabelValues("success").Inc()

		// the wallet balances changed, pick it up asynchronously
		go func() {
			if err := s.Sync.Refresh(context.Background()); err != nil {
				log.Debug().Err(err).Msg("Post-send refresh failed")
			}
		}()

		return c.JSON(http.StatusOK, result)
	}
}
