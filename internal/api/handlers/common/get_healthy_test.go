package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "OK.", res.Body.String())
	})
}
