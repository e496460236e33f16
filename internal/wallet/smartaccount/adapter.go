package smartaccount

import (
	"context"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
)

// Adapter exposes an account-abstraction backend through the common
// signer contract. Message signing, chain-id queries, nonce and owner
// lookups are deliberate capability gaps of this backend type and fail
// with ErrNotImplemented.
type Adapter struct {
	backend Backend

	mu        sync.Mutex
	sponsored bool
}

func NewAdapter(backend Backend) *Adapter {
	return &Adapter{
		backend:   backend,
		sponsored: true,
	}
}

// IsReady reports whether the backend is configured and its client bound.
func (a *Adapter) IsReady() bool {
	return a.backend.ProjectID() != "" && a.backend.Connected()
}

// IsConnected reports whether the smart account address is available.
func (a *Adapter) IsConnected() bool {
	if !a.backend.Connected() {
		return false
	}

	_, ok := a.backend.SmartAccountAddress()

	return ok
}

// GetSmartAccountAddress returns the smart contract account address.
func (a *Adapter) GetSmartAccountAddress(_ context.Context) (string, error) {
	if !a.backend.Connected() {
		return "", signer.ErrNotConnected
	}

	address, ok := a.backend.SmartAccountAddress()
	if !ok {
		return "", signer.ErrNotConnected
	}

	return address, nil
}

// GetAddress is an alias for GetSmartAccountAddress.
func (a *Adapter) GetAddress(ctx context.Context) (string, error) {
	return a.GetSmartAccountAddress(ctx)
}

// SignMessage is not supported for smart accounts. Contract-account
// signatures need a separate scheme (ERC-1271) that is not modeled here.
func (a *Adapter) SignMessage(_ context.Context, _ string) (string, error) {
	return "", errors.Wrap(signer.ErrNotImplemented, "smart account message signing")
}

// SendUserOp normalizes the request and submits it through the backend's
// bundler pipeline.
func (a *Adapter) SendUserOp(ctx context.Context, tx *signer.TransactionRequest) (*signer.SendResult, error) {
	address, err := a.GetSmartAccountAddress(ctx)
	if err != nil {
		return nil, err
	}

	value := tx.Value
	if value == nil {
		value = big.NewInt(0)
	}

	data := tx.Data
	if data == nil {
		data = []byte{}
	}

	op := &UserOperation{
		To:        tx.To,
		Value:     value,
		Data:      data,
		Sponsored: a.IsSponsoredEnabled(),
	}

	result, err := a.backend.SubmitOperation(ctx, op)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit user operation")
	}

	util.LogFromContext(ctx).Debug().
		Str("address", address).
		Str("user_op_hash", result.UserOpHash).
		Bool("sponsored", op.Sponsored).
		Msg("Submitted user operation")

	return &signer.SendResult{
		Hash:       result.Hash,
		UserOpHash: result.UserOpHash,
	}, nil
}

// SendTransaction is an alias for SendUserOp.
func (a *Adapter) SendTransaction(ctx context.Context, tx *signer.TransactionRequest) (*signer.SendResult, error) {
	return a.SendUserOp(ctx, tx)
}

// GetChainID is not supported, the backend's chain is fixed at
// construction time.
func (a *Adapter) GetChainID(_ context.Context) (int64, error) {
	return 0, errors.Wrap(signer.ErrNotImplemented, "smart account chain id query")
}

// SwitchChain delegates to the backend if it exposes the capability.
func (a *Adapter) SwitchChain(ctx context.Context, chainID int64) error {
	switcher, ok := a.backend.(ChainSwitcher)
	if !ok {
		return signer.ErrChainSwitchUnsupported
	}

	if err := switcher.SwitchChain(ctx, chainID); err != nil {
		return errors.Wrapf(err, "failed to switch to chain %d", chainID)
	}

	return nil
}

// IsSponsoredEnabled reports whether paymaster sponsorship is requested
// for subsequent operations.
func (a *Adapter) IsSponsoredEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.sponsored
}

// SetSponsored toggles paymaster sponsorship. Local state only, the
// backend sees the flag per submitted operation.
func (a *Adapter) SetSponsored(enabled bool) {
	a.mu.Lock()
	a.sponsored = enabled
	a.mu.Unlock()
}

// GetNonce is a reserved extension point.
func (a *Adapter) GetNonce(_ context.Context) (*big.Int, error) {
	return nil, errors.Wrap(signer.ErrNotImplemented, "smart account nonce query")
}

// GetOwners is a reserved extension point.
func (a *Adapter) GetOwners(_ context.Context) ([]string, error) {
	return nil, errors.Wrap(signer.ErrNotImplemented, "smart account owners query")
}
