//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/metrics"
	"github/walletpanel/go-wallet-panel/internal/wallet/chain"
	"github/walletpanel/go-wallet-panel/internal/wallet/state"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewClock,
	NewI18N,
	NewAssets,
	NewChainRegistry,
	NewUnifiedAdapter,
	NewSynchronizer,
	metrics.New,
)

// InitNewServer returns a new Server instance with RPC-backed balance
// reads.
func InitNewServer(
	_ config.Server,
	_ Backends,
) (*Server, error) {
	wire.Build(
		serviceSet,
		NewBalanceService,
		wire.Bind(new(state.BalanceReader), new(chain.BalanceService)),
	)
	return new(Server), nil
}

// InitNewServerWithBalanceReader returns a new Server instance with the
// given balance reader. All the other components are initialized via go
// wire according to the configuration.
func InitNewServerWithBalanceReader(
	_ config.Server,
	_ Backends,
	_ state.BalanceReader,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
