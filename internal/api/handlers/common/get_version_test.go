package common_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
	"github/walletpanel/go-wallet-panel/internal/types"
)

func TestGetVersion(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/version", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetVersionResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Contains(t, swag.StringValue(response.Version), "go-wallet-panel")
	})
}
