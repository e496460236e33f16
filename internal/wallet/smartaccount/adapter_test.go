package smartaccount_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"github/walletpanel/go-wallet-panel/internal/wallet/smartaccount"
	"github/walletpanel/go-wallet-panel/internal/wallet/walletfake"
)

func TestReadyAndConnected(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewSmartAccountBackend()
	adapter := smartaccount.NewAdapter(backend)

	assert.True(t, adapter.IsReady())
	assert.True(t, adapter.IsConnected())

	backend.SetProjectID("")
	assert.False(t, adapter.IsReady())
	backend.SetProjectID(walletfake.ProjectID)

	backend.SetAddress("")
	assert.True(t, adapter.IsReady())
	assert.False(t, adapter.IsConnected())
}

func TestGetAddress(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewSmartAccountBackend()
	adapter := smartaccount.NewAdapter(backend)
	ctx := t.Context()

	address, err := adapter.GetSmartAccountAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, walletfake.SmartAccountAddress, address)

	alias, err := adapter.GetAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, address, alias)

	backend.SetConnected(false)
	_, err = adapter.GetAddress(ctx)
	assert.ErrorIs(t, err, signer.ErrNotConnected)
}

func TestSignMessageNotImplemented(t *testing.T) {
	t.Parallel()

	adapter := smartaccount.NewAdapter(walletfake.NewSmartAccountBackend())

	_, err := adapter.SignMessage(t.Context(), "message")
	assert.ErrorIs(t, err, signer.ErrNotImplemented)
}

func TestSendUserOpNormalizesRequest(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewSmartAccountBackend()
	adapter := smartaccount.NewAdapter(backend)

	result, err := adapter.SendUserOp(t.Context(), &signer.TransactionRequest{
		To: "0x1111111111111111111111111111111111111111",
	})
	require.NoError(t, err)
	assert.Equal(t, walletfake.TxHash, result.Hash)
	assert.Equal(t, walletfake.UserOpHash, result.UserOpHash)

	require.NotNil(t, backend.LastOperation)
	assert.Zero(t, backend.LastOperation.Value.Cmp(big.NewInt(0)))
	assert.NotNil(t, backend.LastOperation.Data)
	assert.Empty(t, backend.LastOperation.Data)
	assert.True(t, backend.LastOperation.Sponsored, "sponsorship defaults to enabled")
}

func TestSponsoredToggle(t *testing.T) {
	t.Parallel()

	backend := walletfake.NewSmartAccountBackend()
	adapter := smartaccount.NewAdapter(backend)

	assert.True(t, adapter.IsSponsoredEnabled())

	adapter.SetSponsored(false)
	assert.False(t, adapter.IsSponsoredEnabled())

	_, err := adapter.SendUserOp(t.Context(), &signer.TransactionRequest{
		To: "0x1111111111111111111111111111111111111111",
	})
	require.NoError(t, err)
	assert.False(t, backend.LastOperation.Sponsored)
}

func TestChainQueriesNotImplemented(t *testing.T) {
	t.Parallel()

	adapter := smartaccount.NewAdapter(walletfake.NewSmartAccountBackend())
	ctx := t.Context()

	_, err := adapter.GetChainID(ctx)
	assert.ErrorIs(t, err, signer.ErrNotImplemented)

	_, err = adapter.GetNonce(ctx)
	assert.ErrorIs(t, err, signer.ErrNotImplemented)

	_, err = adapter.GetOwners(ctx)
	assert.ErrorIs(t, err, signer.ErrNotImplemented)
}

func TestSwitchChain(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	// base backend has no switch capability
	adapter := smartaccount.NewAdapter(walletfake.NewSmartAccountBackend())
	assert.ErrorIs(t, adapter.SwitchChain(ctx, 137), signer.ErrChainSwitchUnsupported)

	switchable := walletfake.NewSwitchableSmartAccountBackend()
	adapter = smartaccount.NewAdapter(switchable)
	require.NoError(t, adapter.SwitchChain(ctx, 137))
	assert.Equal(t, int64(137), switchable.ChainID())
}
