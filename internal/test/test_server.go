package test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/api/router"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/wallet/walletfake"
)

// Addresses of the tokens seeded into the test balance reader, matching
// the committed assets registry.
const (
	USDCAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	WETHAddress = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	DAIAddress  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

// DefaultTestConfig returns the service config with everything that
// would reach out of process disabled.
func DefaultTestConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	// periodic refreshes would race the test closures
	cfg.Panel.RefreshInterval = 0
	cfg.Panel.DevFakeBackends = true
	cfg.Echo.ListenAddress = ":0"

	return cfg
}

// WithTestServer creates a fully initialized server with fake wallet
// backends, a seeded in-memory balance reader and all routes attached,
// and hands it to the closure.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()
	WithTestServerComponents(t, func(s *api.Server, _ *FakeComponents) {
		closure(s)
	})
}

// WithTestServerComponents additionally hands the fake backends to the
// closure so tests can inject failures or flip connection states.
func WithTestServerComponents(t *testing.T, closure func(s *api.Server, components *FakeComponents)) {
	t.Helper()

	ctx := context.Background()

	cfg := DefaultTestConfig()
	components := NewFakeComponents()

	s, err := api.InitNewServerWithBalanceReader(cfg, api.Backends{
		EOA:          components.EOA,
		SmartAccount: components.SmartAccount,
	}, components.Balances)
	require.NoError(t, err)

	router.Init(s)

	require.NoError(t, s.InitPanel(ctx))

	closure(s, components)

	for _, err := range s.Shutdown(ctx) {
		require.NoError(t, err)
	}
}

// FakeComponents bundles the fake backend instances so tests can reach
// through to their mutators.
type FakeComponents struct {
	EOA          *walletfake.EOABackend
	SmartAccount *walletfake.SmartAccountBackend
	Balances     *walletfake.BalanceReader
}

// NewFakeComponents returns connected fake backends with 2 ETH native
// balance and seeded token balances.
func NewFakeComponents() *FakeComponents {
	balances := walletfake.NewBalanceReader()
	balances.SetNative(new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18)))
	balances.SetToken(USDCAddress, big.NewInt(1_500_000))
	balances.SetToken(WETHAddress, big.NewInt(5e17))
	balances.SetToken(DAIAddress, big.NewInt(0))

	return &FakeComponents{
		EOA:          walletfake.NewEOABackend(),
		SmartAccount: walletfake.NewSmartAccountBackend(),
		Balances:     balances,
	}
}
