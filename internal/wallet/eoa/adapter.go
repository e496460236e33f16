package eoa

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
)

// Adapter exposes an embedded-custody wallet backend through the common
// signer contract. The backend handle is owned by the host; the adapter
// only caches the request provider between calls.
type Adapter struct {
	backend Backend

	mu       sync.Mutex
	provider Provider
}

func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// IsReady reports whether the backend finished initializing and holds an
// authenticated session.
func (a *Adapter) IsReady() bool {
	return a.backend.Ready() && a.backend.Authenticated()
}

// IsConnected reports whether an authenticated session with a wallet
// address exists.
func (a *Adapter) IsConnected() bool {
	if !a.backend.Authenticated() {
		return false
	}

	_, ok := a.backend.WalletAddress()

	return ok
}

func (a *Adapter) GetAddress(_ context.Context) (string, error) {
	if !a.backend.Authenticated() {
		return "", signer.ErrNotConnected
	}

	address, ok := a.backend.WalletAddress()
	if !ok {
		return "", signer.ErrNotConnected
	}

	return address, nil
}

// requestProvider returns the cached request provider, obtaining one from
// the backend on first use. The cache is cleared on Logout.
func (a *Adapter) requestProvider() (Provider, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.provider != nil {
		return a.provider, nil
	}

	provider, err := a.backend.RequestProvider()
	if err != nil {
		return nil, errors.Wrap(signer.ErrProviderUnavailable, err.Error())
	}

	if provider == nil {
		return nil, signer.ErrProviderUnavailable
	}

	a.provider = provider

	return provider, nil
}

// SignMessage signs a personal message with the embedded wallet key.
func (a *Adapter) SignMessage(ctx context.Context, message string) (string, error) {
	address, err := a.GetAddress(ctx)
	if err != nil {
		return "", err
	}

	provider, err := a.requestProvider()
	if err != nil {
		return "", err
	}

	result, err := provider.Request(ctx, methodPersonalSign, message, address)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign message")
	}

	signature, ok := result.(string)
	if !ok {
		return "", errors.New("provider returned non-string signature")
	}

	util.LogFromContext(ctx).Debug().Str("address", address).Msg("Signed personal message")

	return signature, nil
}

// SendTransaction submits a transaction through the wallet provider and
// returns the transaction hash.
func (a *Adapter) SendTransaction(ctx context.Context, tx *signer.TransactionRequest) (*signer.SendResult, error) {
	address, err := a.GetAddress(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := a.requestProvider()
	if err != nil {
		return nil, err
	}

	params := map[string]any{
		"from": address,
		"to":   tx.To,
	}

	if tx.Value != nil {
		params["value"] = hexutil.EncodeBig(tx.Value)
	}

	if len(tx.Data) > 0 {
		params["data"] = hexutil.Encode(tx.Data)
	}

	result, err := provider.Request(ctx, methodSendTransaction, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send transaction")
	}

	hash, ok := result.(string)
	if !ok {
		return nil, errors.New("provider returned non-string transaction hash")
	}

	util.LogFromContext(ctx).Debug().
		Str("address", address).
		Str("hash", hash).
		Msg("Submitted transaction")

	return &signer.SendResult{Hash: hash}, nil
}

// GetChainID queries the provider for the chain the wallet currently
// operates on.
func (a *Adapter) GetChainID(ctx context.Context) (int64, error) {
	provider, err := a.requestProvider()
	if err != nil {
		return 0, err
	}

	result, err := provider.Request(ctx, methodChainID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to query chain id")
	}

	raw, ok := result.(string)
	if !ok {
		return 0, errors.New("provider returned non-string chain id")
	}

	chainID, err := hexutil.DecodeUint64(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse chain id %q", raw)
	}

	return int64(chainID), nil
}

// SwitchChain asks the wallet to move to another chain. A provider error
// with code 4902 means the chain was never added to the wallet and is
// surfaced as ChainNotConfiguredError.
func (a *Adapter) SwitchChain(ctx context.Context, chainID int64) error {
	provider, err := a.requestProvider()
	if err != nil {
		return err
	}

	params := map[string]any{
		"chainId": hexutil.EncodeUint64(uint64(chainID)),
	}

	if _, err := provider.Request(ctx, methodSwitchChain, params); err != nil {
		var provErr *ProviderError
		if errors.As(err, &provErr) && provErr.Code == errCodeUnrecognizedChain {
			return &signer.ChainNotConfiguredError{ChainID: chainID}
		}

		return errors.Wrapf(err, "failed to switch to chain %d", chainID)
	}

	return nil
}

// Login starts the backend authentication flow.
func (a *Adapter) Login(ctx context.Context) error {
	if err := a.backend.Login(ctx); err != nil {
		return errors.Wrap(err, "failed to login")
	}

	return nil
}

// Logout terminates the session and drops the cached provider handle.
func (a *Adapter) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.provider = nil
	a.mu.Unlock()

	if err := a.backend.Logout(ctx); err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	return nil
}
