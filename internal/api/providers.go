package api

import (
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/walletpanel/go-wallet-panel/internal/config"
	"github/walletpanel/go-wallet-panel/internal/i18n"
	"github/walletpanel/go-wallet-panel/internal/wallet/chain"
	"github/walletpanel/go-wallet-panel/internal/wallet/state"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
)

// PROVIDERS - https://github.com/google/wire/blob/main/docs/guide.md#providers

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewClock() time2.Clock {
	return time2.DefaultClock
}

func NewI18N(_ config.Server) (*i18n.Service, error) {
	return i18n.New("en")
}

func NewAssets(cfg config.Server) (*config.Assets, error) {
	return config.LoadAssets(cfg.Panel.AssetsFilePath)
}

func NewChainRegistry(assets *config.Assets) (*chain.Registry, error) {
	return chain.NewRegistry(assets.Chains)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewBalanceService(registry *chain.Registry) chain.BalanceService {
	return chain.NewBalanceService(registry)
}

// NewUnifiedAdapter wraps the host-supplied backends and applies the
// configured sponsorship default.
func NewUnifiedAdapter(cfg config.Server, backends Backends) (*unified.Adapter, error) {
	adapter, err := unified.NewAdapter(backends.EOA, backends.SmartAccount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct unified adapter")
	}

	if adapter.HasSmartAccount() && !cfg.Panel.SponsoredDefault {
		if err := adapter.SetSponsored(false); err != nil {
			return nil, errors.Wrap(err, "failed to apply sponsorship default")
		}
	}

	return adapter, nil
}

func NewSynchronizer(cfg config.Server, assets *config.Assets, balances state.BalanceReader) *state.Synchronizer {
	return state.NewSynchronizer(balances, state.Options{
		Tokens:          assets.Tokens,
		RefreshInterval: cfg.Panel.RefreshInterval,
		DefaultChainID:  cfg.Panel.DefaultChainID,
	})
}
