package unified

import (
	"context"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github/walletpanel/go-wallet-panel/internal/wallet/eoa"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"github/walletpanel/go-wallet-panel/internal/wallet/smartaccount"
)

// Mode describes which backends the adapter was constructed with. It is
// fixed at construction; only the active backend within ModeUnified can
// change via the preference toggle.
type Mode string

const (
	ModeEOAOnly          Mode = "eoa-only"
	ModeSmartAccountOnly Mode = "smart-account-only"
	ModeUnified          Mode = "unified"
)

// WalletInfo is an aggregate snapshot of the adapter configuration and
// the active backend. Address and chain id are fetched fresh on each
// call; caching is the state synchronizer's job.
type WalletInfo struct {
	Mode             Mode   `json:"mode"`
	IsSmartAccount   bool   `json:"isSmartAccount"`
	Address          string `json:"address"`
	ChainID          int64  `json:"chainId"`
	SponsoredEnabled bool   `json:"sponsoredEnabled"`
	HasEOA           bool   `json:"hasEoa"`
	HasSmartAccount  bool   `json:"hasSmartAccount"`
}

// Adapter composes an optional EOA adapter and an optional smart account
// adapter into a single signer facade and routes every operation to
// whichever backend is active.
type Adapter struct {
	mode  Mode
	eoa   *eoa.Adapter
	smart *smartaccount.Adapter

	mu                 sync.RWMutex
	preferSmartAccount bool
}

// NewAdapter wraps the present backend handles in their adapters. At
// least one backend must be provided.
func NewAdapter(eoaBackend eoa.Backend, smartBackend smartaccount.Backend) (*Adapter, error) {
	a := &Adapter{
		preferSmartAccount: true,
	}

	if eoaBackend != nil {
		a.eoa = eoa.NewAdapter(eoaBackend)
	}

	if smartBackend != nil {
		a.smart = smartaccount.NewAdapter(smartBackend)
	}

	switch {
	case a.eoa != nil && a.smart != nil:
		a.mode = ModeUnified
	case a.smart != nil:
		a.mode = ModeSmartAccountOnly
	case a.eoa != nil:
		a.mode = ModeEOAOnly
	default:
		return nil, signer.ErrNoBackendProvided
	}

	return a, nil
}

func (a *Adapter) Mode() Mode {
	return a.mode
}

func (a *Adapter) HasEOA() bool {
	return a.eoa != nil
}

func (a *Adapter) HasSmartAccount() bool {
	return a.smart != nil
}

// PreferSmartAccount returns the current preference flag.
func (a *Adapter) PreferSmartAccount() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.preferSmartAccount
}

// SetPreferSmartAccount flips the active backend preference. It takes
// effect on the next operation.
func (a *Adapter) SetPreferSmartAccount(prefer bool) error {
	if a.mode == ModeEOAOnly {
		return signer.ErrNotAvailableInEOAOnlyMode
	}

	a.mu.Lock()
	a.preferSmartAccount = prefer
	a.mu.Unlock()

	return nil
}

// activeSigner selects the backend serving delegated operations. In
// unified mode the smart account wins when preferred and ready, the EOA
// is the fallback.
func (a *Adapter) activeSigner() (signer.Signer, error) {
	switch a.mode {
	case ModeEOAOnly:
		return a.eoa, nil
	case ModeSmartAccountOnly:
		return a.smart, nil
	case ModeUnified:
		if a.PreferSmartAccount() && a.smart.IsReady() {
			return a.smart, nil
		}

		if a.eoa.IsReady() {
			return a.eoa, nil
		}

		return nil, signer.ErrNoActiveAdapter
	}

	return nil, signer.ErrNoActiveAdapter
}

// IsSmartAccountActive reports whether operations currently route to the
// smart account backend.
func (a *Adapter) IsSmartAccountActive() bool {
	return a.mode != ModeEOAOnly && a.PreferSmartAccount() && a.smart != nil && a.smart.IsReady()
}

func (a *Adapter) IsReady() bool {
	active, err := a.activeSigner()
	if err != nil {
		return false
	}

	return active.IsReady()
}

func (a *Adapter) IsConnected() bool {
	active, err := a.activeSigner()
	if err != nil {
		return false
	}

	return active.IsConnected()
}

func (a *Adapter) GetAddress(ctx context.Context) (string, error) {
	active, err := a.activeSigner()
	if err != nil {
		return "", err
	}

	return active.GetAddress(ctx)
}

// GetEOAAddress returns the embedded wallet address regardless of which
// backend is active.
func (a *Adapter) GetEOAAddress(ctx context.Context) (string, error) {
	if a.eoa == nil {
		return "", signer.ErrProviderUnavailable
	}

	return a.eoa.GetAddress(ctx)
}

func (a *Adapter) SignMessage(ctx context.Context, message string) (string, error) {
	active, err := a.activeSigner()
	if err != nil {
		return "", err
	}

	return active.SignMessage(ctx, message)
}

func (a *Adapter) SendTransaction(ctx context.Context, tx *signer.TransactionRequest) (*signer.SendResult, error) {
	active, err := a.activeSigner()
	if err != nil {
		return nil, err
	}

	return active.SendTransaction(ctx, tx)
}

// GetChainID queries the active backend, falling back to the EOA backend
// when the smart account reports the chain query as not implemented.
func (a *Adapter) GetChainID(ctx context.Context) (int64, error) {
	active, err := a.activeSigner()
	if err != nil {
		return 0, err
	}

	chainID, err := active.GetChainID(ctx)
	if err != nil && errors.Is(err, signer.ErrNotImplemented) && a.eoa != nil {
		return a.eoa.GetChainID(ctx)
	}

	return chainID, err
}

func (a *Adapter) SwitchChain(ctx context.Context, chainID int64) error {
	active, err := a.activeSigner()
	if err != nil {
		return err
	}

	return active.SwitchChain(ctx, chainID)
}

// SendUserOp bypasses active-backend selection; user operations are a
// smart account capability regardless of current preference.
func (a *Adapter) SendUserOp(ctx context.Context, tx *signer.TransactionRequest) (*signer.SendResult, error) {
	if a.smart == nil {
		return nil, signer.ErrSmartAccountUnavailable
	}

	return a.smart.SendUserOp(ctx, tx)
}

func (a *Adapter) GetSmartAccountAddress(ctx context.Context) (string, error) {
	if a.smart == nil {
		return "", signer.ErrSmartAccountUnavailable
	}

	return a.smart.GetSmartAccountAddress(ctx)
}

func (a *Adapter) GetNonce(ctx context.Context) (*big.Int, error) {
	if a.smart == nil {
		return nil, signer.ErrSmartAccountUnavailable
	}

	return a.smart.GetNonce(ctx)
}

func (a *Adapter) GetOwners(ctx context.Context) ([]string, error) {
	if a.smart == nil {
		return nil, signer.ErrSmartAccountUnavailable
	}

	return a.smart.GetOwners(ctx)
}

// IsSponsoredEnabled returns false without a smart account backend, not
// an error; callers use it to decide whether to show sponsorship controls.
func (a *Adapter) IsSponsoredEnabled() bool {
	if a.smart == nil {
		return false
	}

	return a.smart.IsSponsoredEnabled()
}

func (a *Adapter) SetSponsored(enabled bool) error {
	if a.smart == nil {
		return signer.ErrSmartAccountRequired
	}

	a.smart.SetSponsored(enabled)

	return nil
}

// GetWalletInfo aggregates configuration and active-backend state.
// Address and chain id failures leave the corresponding field empty
// rather than failing the whole snapshot.
func (a *Adapter) GetWalletInfo(ctx context.Context) (*WalletInfo, error) {
	info := &WalletInfo{
		Mode:             a.mode,
		IsSmartAccount:   a.IsSmartAccountActive(),
		SponsoredEnabled: a.IsSponsoredEnabled(),
		HasEOA:           a.eoa != nil,
		HasSmartAccount:  a.smart != nil,
	}

	address, err := a.GetAddress(ctx)
	if err != nil {
		if errors.Is(err, signer.ErrNoActiveAdapter) || errors.Is(err, signer.ErrNotConnected) {
			return info, nil
		}

		return nil, errors.Wrap(err, "failed to get wallet address")
	}

	info.Address = address

	chainID, err := a.GetChainID(ctx)
	if err == nil {
		info.ChainID = chainID
	} else if !errors.Is(err, signer.ErrNotImplemented) {
		return nil, errors.Wrap(err, "failed to get chain id")
	}

	return info, nil
}

// Login requires an EOA backend; only the embedded-custody provider owns
// a login flow.
func (a *Adapter) Login(ctx context.Context) error {
	if a.eoa == nil {
		return signer.ErrLoginRequiresEOA
	}

	return a.eoa.Login(ctx)
}

// Logout terminates the EOA session when present. The smart account
// backend is left untouched; its lifecycle belongs to the host.
func (a *Adapter) Logout(ctx context.Context) error {
	if a.eoa == nil {
		return nil
	}

	return a.eoa.Logout(ctx)
}
