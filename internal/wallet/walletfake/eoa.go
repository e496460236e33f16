package walletfake

import (
	"context"
	"crypto/ecdsa"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github/walletpanel/go-wallet-panel/internal/wallet/eoa"
)

// Deterministic fixtures shared by tests and the dev server.
const (
	// EOAPrivateKeyHex is the standard local-node test key #0; the
	// derived address is EOAAddress.
	EOAPrivateKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	EOAAddress       = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	TxHash = "0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890"
)

// EOACallCounts tracks how often each backend operation was invoked.
type EOACallCounts struct {
	Login           int
	Logout          int
	SignMessage     int
	SendTransaction int
	SwitchChain     int
}

// EOABackend is a deterministic in-memory implementation of eoa.Backend.
// It signs personal messages with a real secp256k1 key so signatures are
// verifiable, and reports provider error 4902 for chains outside its
// known set.
type EOABackend struct {
	mu            sync.Mutex
	ready         bool
	authenticated bool
	chainID       int64
	knownChains   map[int64]bool
	key           *ecdsa.PrivateKey
	calls         EOACallCounts

	providerRequests int
}

func NewEOABackend() *EOABackend {
	key, err := crypto.HexToECDSA(EOAPrivateKeyHex)
	if err != nil {
		panic(err)
	}

	return &EOABackend{
		ready:         true,
		authenticated: true,
		chainID:       1,
		knownChains:   map[int64]bool{1: true, 137: true, 8453: true, 11155111: true},
		key:           key,
	}
}

func (b *EOABackend) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.ready
}

func (b *EOABackend) Authenticated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.authenticated
}

func (b *EOABackend) WalletAddress() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.authenticated {
		return "", false
	}

	return EOAAddress, true
}

func (b *EOABackend) Login(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls.Login++
	b.authenticated = true

	return nil
}

func (b *EOABackend) Logout(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls.Logout++
	b.authenticated = false

	return nil
}

func (b *EOABackend) RequestProvider() (eoa.Provider, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.authenticated {
		return nil, errors.New("no authenticated session")
	}

	b.providerRequests++

	return &fakeProvider{backend: b}, nil
}

// SetReady toggles the backend ready flag.
func (b *EOABackend) SetReady(ready bool) {
	b.mu.Lock()
	b.ready = ready
	b.mu.Unlock()
}

// SetAuthenticated toggles the session flag without counting a login or
// logout.
func (b *EOABackend) SetAuthenticated(authenticated bool) {
	b.mu.Lock()
	b.authenticated = authenticated
	b.mu.Unlock()
}

// ChainID returns the chain the fake wallet currently reports.
func (b *EOABackend) ChainID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.chainID
}

// Calls returns a snapshot of the operation counters.
func (b *EOABackend) Calls() EOACallCounts {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls
}

// ProviderRequests returns how often RequestProvider was invoked, used
// to assert provider-cache behavior.
func (b *EOABackend) ProviderRequests() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.providerRequests
}

type fakeProvider struct {
	backend *EOABackend
}

func (p *fakeProvider) Request(_ context.Context, method string, params ...any) (any, error) {
	b := p.backend

	b.mu.Lock()
	defer b.mu.Unlock()

	switch method {
	case "personal_sign":
		if len(params) < 1 {
			return nil, errors.New("personal_sign requires a message parameter")
		}

		message, ok := params[0].(string)
		if !ok {
			return nil, errors.New("personal_sign message must be a string")
		}

		b.calls.SignMessage++

		sig, err := crypto.Sign(accounts.TextHash([]byte(message)), b.key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sign message")
		}

		// recovery id to Ethereum v
		sig[crypto.RecoveryIDOffset] += 27

		return hexutil.Encode(sig), nil

	case "eth_sendTransaction":
		b.calls.SendTransaction++

		return TxHash, nil

	case "eth_chainId":
		return hexutil.EncodeUint64(uint64(b.chainID)), nil

	case "wallet_switchEthereumChain":
		b.calls.SwitchChain++

		if len(params) < 1 {
			return nil, errors.New("wallet_switchEthereumChain requires a chain parameter")
		}

		args, ok := params[0].(map[string]any)
		if !ok {
			return nil, errors.New("wallet_switchEthereumChain parameter must be an object")
		}

		raw, ok := args["chainId"].(string)
		if !ok {
			return nil, errors.New("chainId must be a hex string")
		}

		chainID, err := hexutil.DecodeUint64(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid chainId")
		}

		if !b.knownChains[int64(chainID)] {
			return nil, &eoa.ProviderError{
				Code:    4902,
				Message: "Unrecognized chain ID",
			}
		}

		b.chainID = int64(chainID)

		return nil, nil
	}

	return nil, errors.Errorf("unsupported method %q", method)
}
