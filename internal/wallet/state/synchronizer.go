package state

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"github/walletpanel/go-wallet-panel/internal/wallet/token"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
)

const (
	// DefaultRefreshInterval is the periodic refresh cadence while the
	// wallet is connected.
	DefaultRefreshInterval = 30 * time.Second

	nativeDecimals = 18
	nativeSymbol   = "ETH"
)

// Options configure a Synchronizer.
type Options struct {
	Tokens []token.ERC20

	// RefreshInterval <= 0 disables the periodic refresh; tests rely on
	// this to avoid leaking timers.
	RefreshInterval time.Duration

	// DefaultChainID is used for balance reads when the adapter cannot
	// report its chain (smart-account-only configurations).
	DefaultChainID int64
}

// Synchronizer derives the wallet snapshot from the unified adapter and
// a balance reader, on demand and on a periodic timer. Each refresh
// carries a monotonic sequence number; a cycle that has been superseded
// by a newer one does not commit its result.
type Synchronizer struct {
	balances BalanceReader
	opts     Options

	seq atomic.Uint64

	mu          sync.RWMutex
	adapter     Adapter
	tokens      []token.ERC20
	state       State
	subscribers []chan State
}

func NewSynchronizer(balances BalanceReader, opts Options) *Synchronizer {
	return &Synchronizer{
		balances: balances,
		opts:     opts,
		tokens:   opts.Tokens,
		state: State{
			TokenBalances: []TokenBalance{},
		},
	}
}

// State returns the current snapshot.
func (s *Synchronizer) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// SetAdapter swaps the adapter and refreshes immediately.
func (s *Synchronizer) SetAdapter(ctx context.Context, adapter Adapter) error {
	s.mu.Lock()
	s.adapter = adapter
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SetTokens swaps the token list and refreshes immediately.
func (s *Synchronizer) SetTokens(ctx context.Context, tokens []token.ERC20) error {
	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Subscribe returns a channel receiving every committed snapshot. Slow
// subscribers miss intermediate snapshots instead of blocking a commit.
func (s *Synchronizer) Subscribe() <-chan State {
	ch := make(chan State, 1)

	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()

	return ch
}

func (s *Synchronizer) currentAdapter() Adapter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.adapter
}

func (s *Synchronizer) currentTokens() []token.ERC20 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens
}

// commit replaces the snapshot wholesale unless a newer refresh cycle
// has started since seq was issued.
func (s *Synchronizer) commit(seq uint64, next State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq.Load() {
		return false
	}

	s.state = next

	for _, ch := range s.subscribers {
		select {
		case ch <- next:
		default:
			// drop the stale snapshot still buffered, then publish
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- next:
			default:
			}
		}
	}

	return true
}

// Refresh runs one full refresh cycle.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	seq := s.seq.Add(1)
	log := util.LogFromContext(ctx)

	adapter := s.currentAdapter()
	if adapter == nil || !adapter.IsConnected() {
		s.commit(seq, State{
			TokenBalances: []TokenBalance{},
		})

		return nil
	}

	s.mu.Lock()
	loading := s.state
	loading.IsLoading = true
	loading.Error = ""
	if seq == s.seq.Load() {
		s.state = loading
	}
	s.mu.Unlock()

	var (
		address string
		chainID int64
		info    *unified.WalletInfo
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		address, err = adapter.GetAddress(gctx)

		return errors.Wrap(err, "failed to fetch address")
	})

	g.Go(func() error {
		id, err := adapter.GetChainID(gctx)
		if err != nil {
			if errors.Is(err, signer.ErrNotImplemented) && s.opts.DefaultChainID > 0 {
				chainID = s.opts.DefaultChainID

				return nil
			}

			return errors.Wrap(err, "failed to fetch chain id")
		}

		chainID = id

		return nil
	})

	g.Go(func() error {
		var err error
		info, err = adapter.GetWalletInfo(gctx)

		return errors.Wrap(err, "failed to fetch wallet info")
	})

	if err := g.Wait(); err != nil {
		// hard failure: keep the last-known-good snapshot, only record
		// the error instead of flipping back to disconnected
		log.Warn().Err(err).Msg("Wallet refresh failed")

		s.mu.Lock()
		if seq == s.seq.Load() {
			failed := s.state
			failed.IsLoading = false
			failed.Error = err.Error()
			s.state = failed
		}
		s.mu.Unlock()

		return err
	}

	native, tokenBalances := s.fetchBalances(ctx, address, chainID)

	committed := s.commit(seq, State{
		IsConnected:    true,
		Address:        address,
		ChainID:        chainID,
		IsSmartAccount: info.IsSmartAccount,
		NativeBalance:  native,
		TokenBalances:  tokenBalances,
	})

	if !committed {
		log.Debug().
			Uint64("seq", seq).
			Msg("Discarding superseded wallet refresh")

		return nil
	}

	log.Debug().
		Str("address", address).
		Int64("chain_id", chainID).
		Int("tokens", len(tokenBalances)).
		Msg("Wallet state refreshed")

	return nil
}

// fetchBalances reads the native balance and every token balance
// concurrently. Failures degrade to a missing native balance or a zero
// token balance; they never abort the refresh.
func (s *Synchronizer) fetchBalances(ctx context.Context, address string, chainID int64) (*NativeBalance, []TokenBalance) {
	tokens := s.currentTokens()

	var (
		native *NativeBalance
		wg     sync.WaitGroup
	)

	tokenBalances := make([]TokenBalance, len(tokens))

	wg.Add(1)
	go func() {
		defer wg.Done()

		balance, err := s.balances.NativeBalance(ctx, chainID, address)
		if err != nil {
			util.LogFromContext(ctx).Warn().
				Int64("chain_id", chainID).
				Err(err).
				Msg("Failed to fetch native balance")

			return
		}

		native = &NativeBalance{
			Balance:   balance,
			Formatted: token.FormatUnits(balance, nativeDecimals),
			Symbol:    nativeSymbol,
		}
	}()

	for i, tok := range tokens {
		wg.Add(1)
		go func(i int, tok token.ERC20) {
			defer wg.Done()

			balance, err := s.balances.TokenBalance(ctx, chainID, tok.Address, address)
			if err != nil {
				util.LogFromContext(ctx).Warn().
					Str("token", tok.Symbol).
					Err(err).
					Msg("Failed to fetch token balance, degrading to zero")

				balance = big.NewInt(0)
			}

			tokenBalances[i] = TokenBalance{
				Token:     tok,
				Balance:   balance,
				Formatted: token.FormatUnits(balance, tok.Decimals),
			}
		}(i, tok)
	}

	wg.Wait()

	return native, tokenBalances
}

// Run executes the periodic refresh loop until ctx is done. Refreshes
// are skipped while the adapter reports disconnected. A non-positive
// interval disables the loop entirely.
func (s *Synchronizer) Run(ctx context.Context) error {
	interval := s.opts.RefreshInterval
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			adapter := s.currentAdapter()
			if adapter == nil || !adapter.IsConnected() {
				continue
			}

			if err := s.Refresh(ctx); err != nil {
				log.Warn().Err(err).Msg("Periodic wallet refresh failed")
			}
		}
	}
}
