package state_test

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"github/walletpanel/go-wallet-panel/internal/wallet/state"
	"github/walletpanel/go-wallet-panel/internal/wallet/token"
	"github/walletpanel/go-wallet-panel/internal/wallet/unified"
	"github/walletpanel/go-wallet-panel/internal/wallet/walletfake"
)

var testTokens = []token.ERC20{
	{Address: "0x1000000000000000000000000000000000000001", Symbol: "AAA", Decimals: 18},
	{Address: "0x1000000000000000000000000000000000000002", Symbol: "BBB", Decimals: 6},
	{Address: "0x1000000000000000000000000000000000000003", Symbol: "CCC", Decimals: 8},
}

func newTestBalances() *walletfake.BalanceReader {
	balances := walletfake.NewBalanceReader()
	balances.SetNative(big.NewInt(2000000000000000000))
	balances.SetToken(testTokens[0].Address, big.NewInt(1000000000000000000))
	balances.SetToken(testTokens[1].Address, big.NewInt(500000))
	balances.SetToken(testTokens[2].Address, big.NewInt(12345678))

	return balances
}

func newConnectedAdapter(t *testing.T) *unified.Adapter {
	t.Helper()

	adapter, err := unified.NewAdapter(walletfake.NewEOABackend(), walletfake.NewSmartAccountBackend())
	require.NoError(t, err)

	return adapter
}

func TestRefreshDisconnectedWithoutAdapter(t *testing.T) {
	t.Parallel()

	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens})

	require.NoError(t, s.Refresh(t.Context()))

	snapshot := s.State()
	assert.False(t, snapshot.IsConnected)
	assert.Empty(t, snapshot.Address)
	assert.Empty(t, snapshot.TokenBalances)
	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Error)
}

func TestRefreshConnected(t *testing.T) {
	t.Parallel()

	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens})

	require.NoError(t, s.SetAdapter(t.Context(), newConnectedAdapter(t)))

	snapshot := s.State()
	assert.True(t, snapshot.IsConnected)
	assert.Equal(t, walletfake.SmartAccountAddress, snapshot.Address)
	assert.Equal(t, int64(1), snapshot.ChainID)
	assert.True(t, snapshot.IsSmartAccount)
	assert.False(t, snapshot.IsLoading)

	require.NotNil(t, snapshot.NativeBalance)
	assert.Equal(t, "2", snapshot.NativeBalance.Formatted)

	require.Len(t, snapshot.TokenBalances, 3)
	assert.Equal(t, "1", snapshot.TokenBalances[0].Formatted)
	assert.Equal(t, "0.5", snapshot.TokenBalances[1].Formatted)
	assert.Equal(t, "0.12345678", snapshot.TokenBalances[2].Formatted)
}

func TestRefreshPartialTokenFailure(t *testing.T) {
	t.Parallel()

	balances := newTestBalances()
	balances.FailToken(testTokens[1].Address, errors.New("contract reverted"))

	s := state.NewSynchronizer(balances, state.Options{Tokens: testTokens})
	require.NoError(t, s.SetAdapter(t.Context(), newConnectedAdapter(t)))

	snapshot := s.State()
	require.Len(t, snapshot.TokenBalances, 3)
	assert.Empty(t, snapshot.Error, "per-token failures must not fail the refresh")

	zeroed := 0
	for _, tb := range snapshot.TokenBalances {
		if tb.Balance.Sign() == 0 {
			zeroed++
			assert.Equal(t, "BBB", tb.Token.Symbol)
			assert.Equal(t, "0", tb.Formatted)
		}
	}
	assert.Equal(t, 1, zeroed)
}

func TestRefreshNativeFailureDegrades(t *testing.T) {
	t.Parallel()

	balances := newTestBalances()
	balances.FailNative(errors.New("rpc down"))

	s := state.NewSynchronizer(balances, state.Options{Tokens: testTokens})
	require.NoError(t, s.SetAdapter(t.Context(), newConnectedAdapter(t)))

	snapshot := s.State()
	assert.True(t, snapshot.IsConnected)
	assert.Nil(t, snapshot.NativeBalance)
	assert.Empty(t, snapshot.Error)
	assert.Len(t, snapshot.TokenBalances, 3)
}

// stubAdapter lets tests fail individual fetches the real fakes cannot.
type stubAdapter struct {
	connected  bool
	address    string
	addressErr error
	chainID    int64
}

func (s *stubAdapter) IsConnected() bool {
	return s.connected
}

func (s *stubAdapter) GetAddress(_ context.Context) (string, error) {
	if s.addressErr != nil {
		return "", s.addressErr
	}

	return s.address, nil
}

func (s *stubAdapter) GetChainID(_ context.Context) (int64, error) {
	return s.chainID, nil
}

func (s *stubAdapter) GetWalletInfo(_ context.Context) (*unified.WalletInfo, error) {
	return &unified.WalletInfo{Mode: unified.ModeEOAOnly, Address: s.address, ChainID: s.chainID}, nil
}

func TestRefreshHardFailureKeepsLastKnownGood(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	adapter := &stubAdapter{
		connected: true,
		address:   walletfake.EOAAddress,
		chainID:   1,
	}

	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens})
	require.NoError(t, s.SetAdapter(ctx, adapter))
	require.True(t, s.State().IsConnected)

	adapter.addressErr = errors.New("backend exploded")

	err := s.Refresh(ctx)
	require.Error(t, err)

	snapshot := s.State()
	assert.True(t, snapshot.IsConnected, "transient refresh errors keep the last-known-good snapshot")
	assert.Equal(t, walletfake.EOAAddress, snapshot.Address)
	assert.NotEmpty(t, snapshot.Error)
	assert.False(t, snapshot.IsLoading)
	assert.Len(t, snapshot.TokenBalances, 3)
}

func TestRefreshDisconnectsAfterLogout(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	eoaBackend := walletfake.NewEOABackend()
	adapter, err := unified.NewAdapter(eoaBackend, nil)
	require.NoError(t, err)

	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens})
	require.NoError(t, s.SetAdapter(ctx, adapter))
	require.True(t, s.State().IsConnected)

	require.NoError(t, adapter.Logout(ctx))
	require.NoError(t, s.Refresh(ctx))

	snapshot := s.State()
	assert.False(t, snapshot.IsConnected)
	assert.Empty(t, snapshot.Address)
	assert.Empty(t, snapshot.TokenBalances)
}

func TestSmartAccountOnlyUsesDefaultChain(t *testing.T) {
	t.Parallel()

	adapter, err := unified.NewAdapter(nil, walletfake.NewSmartAccountBackend())
	require.NoError(t, err)

	s := state.NewSynchronizer(newTestBalances(), state.Options{
		Tokens:         testTokens,
		DefaultChainID: 11155111,
	})
	require.NoError(t, s.SetAdapter(t.Context(), adapter))

	snapshot := s.State()
	assert.True(t, snapshot.IsConnected)
	assert.Equal(t, int64(11155111), snapshot.ChainID)
}

func TestChainSwitchUnsupportedDoesNotBreakRefresh(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	adapter := newConnectedAdapter(t)

	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens})
	require.NoError(t, s.SetAdapter(ctx, adapter))

	// base smart account backend has no switch capability
	err := adapter.SwitchChain(ctx, 137)
	assert.ErrorIs(t, err, signer.ErrChainSwitchUnsupported)

	require.NoError(t, s.Refresh(ctx))
	assert.True(t, s.State().IsConnected)
}

func TestSetTokensTriggersRefresh(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens[:1]})
	require.NoError(t, s.SetAdapter(ctx, newConnectedAdapter(t)))
	require.Len(t, s.State().TokenBalances, 1)

	require.NoError(t, s.SetTokens(ctx, testTokens))
	assert.Len(t, s.State().TokenBalances, 3)
}

// blockingAdapter holds the first refresh cycle open until released and
// signals once that cycle has started.
type blockingAdapter struct {
	mu      sync.Mutex
	address string
	gate    chan struct{}
	entered chan struct{}
}

func (b *blockingAdapter) IsConnected() bool { return true }

func (b *blockingAdapter) GetAddress(_ context.Context) (string, error) {
	b.mu.Lock()
	gate := b.gate
	entered := b.entered
	b.gate = nil
	b.entered = nil
	b.mu.Unlock()

	if gate != nil {
		close(entered)
		<-gate
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.address, nil
}

func (b *blockingAdapter) GetChainID(_ context.Context) (int64, error) {
	return 1, nil
}

func (b *blockingAdapter) GetWalletInfo(_ context.Context) (*unified.WalletInfo, error) {
	return &unified.WalletInfo{Mode: unified.ModeEOAOnly}, nil
}

func TestStaleRefreshIsDiscarded(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	gate := make(chan struct{})
	entered := make(chan struct{})
	adapter := &blockingAdapter{
		address: "0x0000000000000000000000000000000000000aaa",
		gate:    gate,
		entered: entered,
	}

	s := state.NewSynchronizer(newTestBalances(), state.Options{})

	done := make(chan error, 1)
	go func() {
		// first cycle, superseded while blocked on the gate
		done <- s.SetAdapter(ctx, adapter)
	}()

	<-entered

	adapter.mu.Lock()
	adapter.address = "0x0000000000000000000000000000000000000bbb"
	adapter.mu.Unlock()

	require.NoError(t, s.Refresh(ctx))
	require.Equal(t, "0x0000000000000000000000000000000000000bbb", s.State().Address)

	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, "0x0000000000000000000000000000000000000bbb", s.State().Address,
		"superseded refresh must not overwrite the newer snapshot")
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s := state.NewSynchronizer(newTestBalances(), state.Options{Tokens: testTokens})
	ch := s.Subscribe()

	require.NoError(t, s.SetAdapter(ctx, newConnectedAdapter(t)))

	select {
	case snapshot := <-ch:
		assert.True(t, snapshot.IsConnected)
	default:
		t.Fatal("expected a committed snapshot on the subscription channel")
	}
}
