package wallet_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
	"github/walletpanel/go-wallet-panel/internal/wallet/state"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
	"github/walletpanel/go-wallet-panel/internal/wallet/walletfake"
)

func TestPostLoginLogoutRoundTrip(t *testing.T) {
	test.WithTestServerComponents(t, func(s *api.Server, components *test.FakeComponents) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/logout", nil, nil)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)
		assert.Equal(t, 1, components.EOA.Calls().Logout)

		// the smart account session survives an EOA logout
		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/state", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var snapshot state.State
		test.ParseResponseBody(t, res, &snapshot)
		assert.True(t, snapshot.IsConnected)
		assert.Equal(t, walletfake.SmartAccountAddress, snapshot.Address)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/login", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Equal(t, 1, components.EOA.Calls().Login)

		var info unified.WalletInfo
		test.ParseResponseBody(t, res, &info)
		assert.True(t, info.HasEOA)
	})
}

func TestPostLogoutDisconnectsEOAOnlySetup(t *testing.T) {
	test.WithTestServerComponents(t, func(s *api.Server, components *test.FakeComponents) {
		components.SmartAccount.SetConnected(false)

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/logout", nil, nil)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/api/v1/wallet/state", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var snapshot state.State
		test.ParseResponseBody(t, res, &snapshot)
		assert.False(t, snapshot.IsConnected)
		assert.Empty(t, snapshot.Address)
	})
}
