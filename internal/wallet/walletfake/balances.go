package walletfake

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BalanceReader is a deterministic in-memory state.BalanceReader. Token
// balances are keyed by lowercased contract address; per-token failures
// can be injected to exercise the synchronizer's degradation path.
type BalanceReader struct {
	mu         sync.Mutex
	native     *big.Int
	nativeErr  error
	tokens     map[string]*big.Int
	failTokens map[string]error
}

func NewBalanceReader() *BalanceReader {
	return &BalanceReader{
		native:     big.NewInt(0),
		tokens:     make(map[string]*big.Int),
		failTokens: make(map[string]error),
	}
}

func (r *BalanceReader) NativeBalance(_ context.Context, _ int64, _ string) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nativeErr != nil {
		return nil, r.nativeErr
	}

	return new(big.Int).Set(r.native), nil
}

func (r *BalanceReader) TokenBalance(_ context.Context, _ int64, tokenAddress string, _ string) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(tokenAddress)

	if err, ok := r.failTokens[key]; ok {
		return nil, err
	}

	if balance, ok := r.tokens[key]; ok {
		return new(big.Int).Set(balance), nil
	}

	return nil, errors.Errorf("unknown token contract %s", tokenAddress)
}

// SetNative sets the native balance returned for every account.
func (r *BalanceReader) SetNative(balance *big.Int) {
	r.mu.Lock()
	r.native = new(big.Int).Set(balance)
	r.mu.Unlock()
}

// FailNative injects an error for native balance reads; nil restores
// success.
func (r *BalanceReader) FailNative(err error) {
	r.mu.Lock()
	r.nativeErr = err
	r.mu.Unlock()
}

// SetToken sets the balance returned for a token contract.
func (r *BalanceReader) SetToken(tokenAddress string, balance *big.Int) {
	r.mu.Lock()
	r.tokens[strings.ToLower(tokenAddress)] = new(big.Int).Set(balance)
	r.mu.Unlock()
}

// FailToken injects an error for a single token contract; nil removes
// the injection.
func (r *BalanceReader) FailToken(tokenAddress string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(tokenAddress)
	if err == nil {
		delete(r.failTokens, key)
		return
	}

	r.failTokens[key] = err
}
