package signer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds shared by all adapters. Operational failures
// (signing, sending, switching) wrap the underlying backend error with
// context instead; these sentinels cover the conditions callers need to
// detect programmatically via errors.Is.
var (
	// ErrNotConnected is returned when an operation requires a usable
	// wallet address and the backend does not report one.
	ErrNotConnected = errors.New("wallet not connected")

	// ErrProviderUnavailable is returned when the EOA backend cannot
	// supply a request provider while authenticated.
	ErrProviderUnavailable = errors.New("request provider not available")

	// ErrSmartAccountUnavailable is returned when a smart-account-only
	// operation is requested without a configured smart account backend.
	ErrSmartAccountUnavailable = errors.New("smart account adapter not available")

	// ErrNotImplemented marks a deliberate capability gap of a backend
	// type, not a transient failure.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoBackendProvided is returned when the unified adapter is
	// constructed without any backend.
	ErrNoBackendProvided = errors.New("at least one wallet backend must be provided")

	// ErrNoActiveAdapter is returned in unified mode when neither
	// backend is ready to serve an operation.
	ErrNoActiveAdapter = errors.New("no active wallet adapter available")

	// ErrNotAvailableInEOAOnlyMode is returned when smart account
	// preferences are toggled without a smart account backend.
	ErrNotAvailableInEOAOnlyMode = errors.New("smart account not available in eoa-only mode")

	// ErrLoginRequiresEOA is returned when login is requested without an
	// EOA backend; only the embedded-custody backend owns a login flow.
	ErrLoginRequiresEOA = errors.New("login requires an eoa backend")

	// ErrSmartAccountRequired is returned when sponsorship is toggled
	// without a smart account backend.
	ErrSmartAccountRequired = errors.New("sponsored transactions require a smart account backend")

	// ErrChainSwitchUnsupported is returned when the active backend
	// exposes no chain switch capability.
	ErrChainSwitchUnsupported = errors.New("chain switching not supported by active backend")
)

// ChainNotConfiguredError is returned when the wallet backend reports that
// the requested chain has not been added to it (provider error 4902).
type ChainNotConfiguredError struct {
	ChainID int64
}

func (e *ChainNotConfiguredError) Error() string {
	return fmt.Sprintf("chain %d not configured on wallet backend", e.ChainID)
}

// IsChainNotConfigured reports whether err carries a ChainNotConfiguredError.
func IsChainNotConfigured(err error) bool {
	var target *ChainNotConfiguredError
	return errors.As(err, &target)
}
