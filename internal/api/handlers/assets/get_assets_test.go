package assets_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/test"
	"github/walletpanel/go-wallet-panel/internal/wallet/chain"
	"github/walletpanel/go-wallet-panel/internal/wallet/token"
)

func TestGetChains(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/chains", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var chains []chain.Chain
		test.ParseResponseBody(t, res, &chains)

		require.Len(t, chains, 4)

		ids := make(map[int64]string, len(chains))
		for _, c := range chains {
			ids[c.ID] = c.Name
		}

		assert.Equal(t, "Ethereum", ids[1])
		assert.Equal(t, "Sepolia", ids[11155111])
	})
}

func TestGetTokens(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/tokens", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var tokens []token.ERC20
		test.ParseResponseBody(t, res, &tokens)

		require.Len(t, tokens, 3)
		assert.Equal(t, "USDC", tokens[0].Symbol)
		assert.EqualValues(t, 6, tokens[0].Decimals)
		assert.Equal(t, test.USDCAddress, tokens[0].Address)
	})
}
