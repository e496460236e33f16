package wallet

import (
	"net/http"

	"github.com/pkg/errors"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/api/httperrors"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/wallet/send"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"golang.org/x/text/language"
)

// mapWalletError translates wallet adapter errors into public HTTP
// errors. Unknown errors map to a backend failure without leaking the
// internal cause.
func mapWalletError(err error) error {
	var chainErr *signer.ChainNotConfiguredError

	switch {
	case errors.Is(err, signer.ErrNotConnected),
		errors.Is(err, signer.ErrNoActiveAdapter):
		return httperrors.NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeNotConnected, "Wallet is not connected.")
	case errors.Is(err, signer.ErrNotImplemented):
		return httperrors.NewHTTPError(http.StatusNotImplemented, types.PublicHTTPErrorTypeNotImplemented, "The active wallet backend does not implement this capability.")
	case errors.Is(err, signer.ErrNotAvailableInEOAOnlyMode),
		errors.Is(err, signer.ErrLoginRequiresEOA),
		errors.Is(err, signer.ErrSmartAccountRequired),
		errors.Is(err, signer.ErrSmartAccountUnavailable),
		errors.Is(err, signer.ErrChainSwitchUnsupported):
		return httperrors.NewHTTPErrorWithDetail(http.StatusConflict, types.PublicHTTPErrorTypeModeMismatch, "Operation is not available in the current wallet mode.", err.Error())
	case errors.As(err, &chainErr):
		return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeChainNotConfigured, "The requested chain is not configured in the wallet.", err.Error())
	default:
		return httperrors.NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeBackendFailure, "The wallet backend failed to process the request.")
	}
}

// newSendValidationError localizes the builder's field errors for the
// negotiated language.
func newSendValidationError(s *api.Server, lang language.Tag, validationErrs []*send.ValidationError) error {
	details := make([]*types.HTTPValidationErrorDetail, 0, len(validationErrs))
	for _, vErr := range validationErrs {
		details = append(details, httperrors.NewValidationErrorDetail(vErr.Field, s.I18n.T(vErr.MessageID, lang)))
	}

	return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Send input is invalid.", details)
}
