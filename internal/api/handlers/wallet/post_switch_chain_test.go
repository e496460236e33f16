package wallet_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
	"github/walletpanel/go-wallet-panel/internal/types"
)

func TestPostSwitchChainSmartAccountUnsupported(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/switch-chain", test.GenericPayload{
			"chainId": 137,
		}, nil)

		require.Equal(t, http.StatusConflict, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.PublicHTTPErrorTypeModeMismatch, *response.Type)
	})
}

func TestPostSwitchChainViaEOA(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/preferences", test.GenericPayload{
			"preferSmartAccount": false,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/switch-chain", test.GenericPayload{
			"chainId": 137,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SwitchChainResponse
		test.ParseResponseBody(t, res, &response)
		assert.EqualValues(t, 137, response.ChainID)

		// the wallet state follows the switched chain
		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/state", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), `"chainId":137`)
	})
}

func TestPostSwitchChainUnknownChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/preferences", test.GenericPayload{
			"preferSmartAccount": false,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/switch-chain", test.GenericPayload{
			"chainId": 424242,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, types.PublicHTTPErrorTypeChainNotConfigured, *response.Type)
	})
}

func TestPostSwitchChainMissingChainID(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/switch-chain", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
