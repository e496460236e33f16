package eoa

import (
	"context"
	"fmt"
)

// Provider request methods the embedded wallet backend must support.
const (
	methodPersonalSign    = "personal_sign"
	methodSendTransaction = "eth_sendTransaction"
	methodChainID         = "eth_chainId"
	methodSwitchChain     = "wallet_switchEthereumChain"
)

// errCodeUnrecognizedChain is the EIP-3326 provider error code for a chain
// that has not been added to the wallet.
const errCodeUnrecognizedChain = 4902

// Provider is the request-style Ethereum provider handed out by the
// embedded wallet backend once the user is authenticated.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (any, error)
}

// ProviderError carries the JSON-RPC error code reported by the provider,
// so callers can distinguish protocol-level failures (e.g. unrecognized
// chain) from transport failures.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// Backend is the opaque capability the host application supplies for the
// embedded-custody auth provider. The adapter holds a non-owning reference;
// session lifecycle stays with the host.
type Backend interface {
	// Ready reports whether the backend finished initializing.
	Ready() bool

	// Authenticated reports whether a user session exists.
	Authenticated() bool

	// WalletAddress returns the embedded wallet address, if present.
	WalletAddress() (string, bool)

	// Login starts the backend's authentication flow.
	Login(ctx context.Context) error

	// Logout terminates the session.
	Logout(ctx context.Context) error

	// RequestProvider returns the request-style provider for the
	// authenticated session.
	RequestProvider() (Provider, error)
}
