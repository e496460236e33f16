package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github/walletpanel/go-wallet-panel/internal/wallet/chain"
	"github/walletpanel/go-wallet-panel/internal/wallet/token"
)

// Assets is the host-supplied static metadata registry: the chains the
// panel can display and the tokens it tracks balances for.
type Assets struct {
	Chains []chain.Chain `mapstructure:"chains"`
	Tokens []token.ERC20 `mapstructure:"tokens"`
}

// LoadAssets reads the asset registry file (YAML, JSON or TOML,
// determined by extension).
func LoadAssets(path string) (*Assets, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read assets file %q", path)
	}

	var assets Assets
	if err := v.Unmarshal(&assets); err != nil {
		return nil, errors.Wrapf(err, "failed to parse assets file %q", path)
	}

	for _, t := range assets.Tokens {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid token in assets file")
		}
	}

	return &assets, nil
}
