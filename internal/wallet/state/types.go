package state

import (
	"context"
	"math/big"

	"github/walletpanel/go-wallet-panel/internal/wallet/token"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
)

// TokenBalance pairs a token descriptor with its integer base-unit
// balance and the pre-formatted display string.
type TokenBalance struct {
	Token     token.ERC20 `json:"token"`
	Balance   *big.Int    `json:"balance"`
	Formatted string      `json:"formatted"`
}

// NativeBalance is the chain's native asset balance.
type NativeBalance struct {
	Balance   *big.Int `json:"balance"`
	Formatted string   `json:"formatted"`
	Symbol    string   `json:"symbol"`
}

// State is the wallet snapshot the synchronizer derives on each refresh.
// It is replaced wholesale; fields are never mutated individually outside
// a refresh cycle.
type State struct {
	IsConnected    bool           `json:"isConnected"`
	Address        string         `json:"address,omitempty"`
	ChainID        int64          `json:"chainId,omitempty"`
	IsSmartAccount bool           `json:"isSmartAccount"`
	NativeBalance  *NativeBalance `json:"nativeBalance,omitempty"`
	TokenBalances  []TokenBalance `json:"tokenBalances"`
	IsLoading      bool           `json:"isLoading"`
	Error          string         `json:"error,omitempty"`
}

// Adapter is the slice of the unified adapter the synchronizer consumes.
type Adapter interface {
	IsConnected() bool
	GetAddress(ctx context.Context) (string, error)
	GetChainID(ctx context.Context) (int64, error)
	GetWalletInfo(ctx context.Context) (*unified.WalletInfo, error)
}

// BalanceReader fetches balances on a given chain. Implemented by
// chain.BalanceService; tests substitute a deterministic fake.
type BalanceReader interface {
	NativeBalance(ctx context.Context, chainID int64, account string) (*big.Int, error)
	TokenBalance(ctx context.Context, chainID int64, tokenAddress string, account string) (*big.Int, error)
}
