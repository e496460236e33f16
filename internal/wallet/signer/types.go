package signer

import (
	"context"
	"math/big"
)

// TransactionRequest represents a transaction to be submitted through a
// wallet backend. Value and Data are optional; adapters normalize absent
// fields before handing the request to their backend.
type TransactionRequest struct {
	To    string   // Recipient address (hex string with 0x prefix)
	Value *big.Int // Amount in wei, nil for pure contract calls
	Data  []byte   // Call data, nil for plain value transfers
}

// SendResult represents the outcome of a submitted transaction.
// UserOpHash is set only when the smart account path was used.
type SendResult struct {
	Hash       string
	UserOpHash string
}

// Signer is the common contract of every wallet backend adapter.
type Signer interface {
	// IsReady reports whether the adapter can serve requests.
	IsReady() bool

	// IsConnected reports whether a usable wallet address is present.
	IsConnected() bool

	// GetAddress returns the active wallet address.
	GetAddress(ctx context.Context) (string, error)

	// SignMessage signs a personal message and returns the signature hex.
	SignMessage(ctx context.Context, message string) (string, error)

	// SendTransaction submits a transaction through the backend.
	SendTransaction(ctx context.Context, tx *TransactionRequest) (*SendResult, error)

	// GetChainID returns the chain the backend currently operates on.
	GetChainID(ctx context.Context) (int64, error)

	// SwitchChain asks the backend to move to another chain.
	SwitchChain(ctx context.Context, chainID int64) error
}

// SmartAccountSigner extends Signer with account-abstraction operations.
type SmartAccountSigner interface {
	Signer

	// GetSmartAccountAddress returns the smart contract account address.
	GetSmartAccountAddress(ctx context.Context) (string, error)

	// SendUserOp submits a user operation through the bundler pipeline.
	SendUserOp(ctx context.Context, tx *TransactionRequest) (*SendResult, error)

	// IsSponsoredEnabled reports whether paymaster sponsorship is requested.
	IsSponsoredEnabled() bool

	// SetSponsored toggles paymaster sponsorship for subsequent operations.
	SetSponsored(enabled bool)

	// GetNonce returns the smart account nonce.
	GetNonce(ctx context.Context) (*big.Int, error)

	// GetOwners returns the owner addresses of the smart account.
	GetOwners(ctx context.Context) ([]string, error)
}
