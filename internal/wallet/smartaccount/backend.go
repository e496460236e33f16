package smartaccount

import (
	"context"
	"math/big"
)

// UserOperation is the normalized operation handed to the backend's
// bundler pipeline. Value and Data are never nil after normalization.
type UserOperation struct {
	To        string
	Value     *big.Int
	Data      []byte
	Sponsored bool
}

// SubmitResult carries the hashes the bundler pipeline reports. Hash is
// the eventual transaction hash, UserOpHash the operation hash.
type SubmitResult struct {
	Hash       string
	UserOpHash string
}

// Backend is the opaque capability the host application supplies for the
// account-abstraction provider. The chain the account lives on is fixed
// when the host constructs the backend.
type Backend interface {
	// ProjectID returns the backend project identifier, empty when the
	// backend was never configured.
	ProjectID() string

	// Connected reports whether the smart account client is bound.
	Connected() bool

	// SmartAccountAddress returns the deployed account address, if present.
	SmartAccountAddress() (string, bool)

	// SubmitOperation sends a user operation through the bundler and
	// optional paymaster.
	SubmitOperation(ctx context.Context, op *UserOperation) (*SubmitResult, error)
}

// ChainSwitcher is an optional backend capability. Backends without it
// cause SwitchChain to fail with ErrChainSwitchUnsupported.
type ChainSwitcher interface {
	SwitchChain(ctx context.Context, chainID int64) error
}
