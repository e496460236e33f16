package eoa_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/wallet/eoa"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"github/walletpanel/go-wallet-panel/internal/wallet/walletfake"
)

func TestReadyAndConnected(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)

	assert.True(t, adapter.IsReady())
	assert.True(t, adapter.IsConnected())

	backend.SetReady(false)
	assert.False(t, adapter.IsReady())
	assert.True(t, adapter.IsConnected())

	backend.SetReady(true)
	backend.SetAuthenticated(false)
	assert.False(t, adapter.IsReady())
	assert.False(t, adapter.IsConnected())
}

func TestGetAddress(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)
	ctx := t.Context()

	address, err := adapter.GetAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, walletfake.EOAAddress, address)

	backend.SetAuthenticated(false)
	_, err = adapter.GetAddress(ctx)
	assert.ErrorIs(t, err, signer.ErrNotConnected)
}

func TestSignMessageVerifiable(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)
	ctx := t.Context()

	message := "hello wallet panel"
	signature, err := adapter.SignMessage(ctx, message)
	require.NoError(t, err)

	sig, err := hexutil.Decode(signature)
	require.NoError(t, err)
	require.Len(t, sig, crypto.SignatureLength)

	sig[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	require.NoError(t, err)
	assert.Equal(t, walletfake.EOAAddress, crypto.PubkeyToAddress(*pub).Hex())
}

func TestSendTransaction(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)
	ctx := t.Context()

	result, err := adapter.SendTransaction(ctx, &signer.TransactionRequest{
		To:    "0x1111111111111111111111111111111111111111",
		Value: big.NewInt(1),
	})
	require.NoError(t, err)
	assert.Equal(t, walletfake.TxHash, result.Hash)
	assert.Empty(t, result.UserOpHash)
	assert.Equal(t, 1, backend.Calls().SendTransaction)
}

func TestGetChainID(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)

	chainID, err := adapter.GetChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), chainID)
}

func TestSwitchChain(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)
	ctx := t.Context()

	require.NoError(t, adapter.SwitchChain(ctx, 137))
	assert.Equal(t, int64(137), backend.ChainID())

	chainID, err := adapter.GetChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(137), chainID)
}

func TestSwitchChainNotConfigured(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)

	err := adapter.SwitchChain(t.Context(), 424242)
	require.Error(t, err)
	require.True(t, signer.IsChainNotConfigured(err))

	var chainErr *signer.ChainNotConfiguredError
	require.ErrorAs(t, err, &chainErr)
	assert.Equal(t, int64(424242), chainErr.ChainID)
}

func TestProviderCacheInvalidatedOnLogout(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewEOABackend()
	adapter := eoa.NewAdapter(backend)
	ctx := t.Context()

	_, err := adapter.SignMessage(ctx, "first")
	require.NoError(t, err)
	_, err = adapter.SignMessage(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.ProviderRequests(), "provider should be cached between calls")

	require.NoError(t, adapter.Logout(ctx))
	require.NoError(t, adapter.Login(ctx))

	_, err = adapter.SignMessage(ctx, "third")
	require.NoError(t, err)
	assert.Equal(t, 2, backend.ProviderRequests(), "logout should drop the cached provider")
}
