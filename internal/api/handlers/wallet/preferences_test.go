package wallet_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
	"github/walletpanel/go-wallet-panel/internal/types"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
)

func TestGetPreferencesDefaults(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/preferences", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PreferencesResponse
		test.ParseResponseBody(t, res, &response)

		assert.Equal(t, string(unified.ModeUnified), response.Mode)
		assert.True(t, response.PreferSmartAccount)
		assert.True(t, response.SponsoredEnabled)
		assert.True(t, response.SmartAccountActive)
	})
}

func TestPutPreferencesSwitchesActiveSigner(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/preferences", test.GenericPayload{
			"preferSmartAccount": false,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PreferencesResponse
		test.ParseResponseBody(t, res, &response)

		assert.False(t, response.PreferSmartAccount)
		assert.False(t, response.SmartAccountActive)
	})
}

func TestPutPreferencesSponsorship(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/preferences", test.GenericPayload{
			"sponsoredEnabled": false,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.PreferencesResponse
		test.ParseResponseBody(t, res, &response)

		assert.False(t, response.SponsoredEnabled)
	})
}

func TestPutPreferencesEmptyBody(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "PUT", "/api/v1/wallet/preferences", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
