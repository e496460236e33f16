package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
)

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		assert.Contains(t, res.Body.String(), "wallet_panel_refresh_total")
	})
}
