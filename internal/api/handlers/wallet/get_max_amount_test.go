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

func TestGetMaxAmountNative(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/send/max-amount", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.MaxAmountResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "native", response.AssetID)
		assert.Equal(t, "2", response.Amount)
	})
}

func TestGetMaxAmountToken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/send/max-amount?assetId="+test.USDCAddress, nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.MaxAmountResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "1.5", response.Amount)
	})
}

func TestGetMaxAmountUnknownAsset(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/send/max-amount?assetId=0x0000000000000000000000000000000000000bad", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
