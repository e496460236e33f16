package walletfake

import (
	"context"
	"sync"

	"github/walletpanel/go-wallet-panel/internal/wallet/smartaccount"
)

const (
	SmartAccountAddress = "0x11FFaabbccddFFaabbccddFFaabbccddFFaabbcc"
	UserOpHash          = "0xfedcba0987654321fedcba0987654321fedcba0987654321fedcba0987654321"
	ProjectID           = "fake-project-id"
)

// SmartAccountCallCounts tracks backend invocations.
type SmartAccountCallCounts struct {
	SubmitOperation int
	SwitchChain     int
}

// SmartAccountBackend is a deterministic in-memory implementation of
// smartaccount.Backend. It deliberately does not implement the
// ChainSwitcher capability; wrap it in a SwitchableSmartAccountBackend
// when a test needs chain switching.
type SmartAccountBackend struct {
	mu        sync.Mutex
	projectID string
	connected bool
	address   string
	submitErr error
	calls     SmartAccountCallCounts

	// LastOperation holds the most recently submitted operation.
	LastOperation *smartaccount.UserOperation
}

func NewSmartAccountBackend() *SmartAccountBackend {
	return &SmartAccountBackend{
		projectID: ProjectID,
		connected: true,
		address:   SmartAccountAddress,
	}
}

func (b *SmartAccountBackend) ProjectID() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.projectID
}

func (b *SmartAccountBackend) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.connected
}

func (b *SmartAccountBackend) SmartAccountAddress() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.address == "" {
		return "", false
	}

	return b.address, true
}

func (b *SmartAccountBackend) SubmitOperation(_ context.Context, op *smartaccount.UserOperation) (*smartaccount.SubmitResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls.SubmitOperation++
	b.LastOperation = op

	if b.submitErr != nil {
		return nil, b.submitErr
	}

	return &smartaccount.SubmitResult{
		Hash:       TxHash,
		UserOpHash: UserOpHash,
	}, nil
}

// SetConnected toggles the connected flag.
func (b *SmartAccountBackend) SetConnected(connected bool) {
	b.mu.Lock()
	b.connected = connected
	b.mu.Unlock()
}

// SetAddress overrides the reported smart account address; empty means
// absent.
func (b *SmartAccountBackend) SetAddress(address string) {
	b.mu.Lock()
	b.address = address
	b.mu.Unlock()
}

// SetProjectID overrides the project identifier; empty simulates an
// unconfigured backend.
func (b *SmartAccountBackend) SetProjectID(projectID string) {
	b.mu.Lock()
	b.projectID = projectID
	b.mu.Unlock()
}

// FailSubmit injects an error returned by every subsequent
// SubmitOperation; nil restores success.
func (b *SmartAccountBackend) FailSubmit(err error) {
	b.mu.Lock()
	b.submitErr = err
	b.mu.Unlock()
}

// Calls returns a snapshot of the operation counters.
func (b *SmartAccountBackend) Calls() SmartAccountCallCounts {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls
}

// SwitchableSmartAccountBackend adds the ChainSwitcher capability on top
// of the base fake.
type SwitchableSmartAccountBackend struct {
	*SmartAccountBackend

	mu        sync.Mutex
	chainID   int64
	switchErr error
}

func NewSwitchableSmartAccountBackend() *SwitchableSmartAccountBackend {
	return &SwitchableSmartAccountBackend{
		SmartAccountBackend: NewSmartAccountBackend(),
		chainID:             1,
	}
}

func (b *SwitchableSmartAccountBackend) SwitchChain(_ context.Context, chainID int64) error {
	b.SmartAccountBackend.mu.Lock()
	b.SmartAccountBackend.calls.SwitchChain++
	b.SmartAccountBackend.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.switchErr != nil {
		return b.switchErr
	}

	b.chainID = chainID

	return nil
}

// ChainID returns the chain the fake last switched to.
func (b *SwitchableSmartAccountBackend) ChainID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.chainID
}

// FailSwitch injects an error returned by every subsequent SwitchChain.
func (b *SwitchableSmartAccountBackend) FailSwitch(err error) {
	b.mu.Lock()
	b.switchErr = err
	b.mu.Unlock()
}
