package chain

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// BalanceService reads native and token balances on any configured chain.
type BalanceService interface {
	NativeBalance(ctx context.Context, chainID int64, account string) (*big.Int, error)
	TokenBalance(ctx context.Context, chainID int64, tokenAddress string, account string) (*big.Int, error)
	Close()
}

type balanceService struct {
	registry *Registry

	mu      sync.Mutex
	clients map[int64]*RPCClient
}

// NewBalanceService creates a balance reader backed by per-chain RPC
// clients, dialed lazily on first use.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewBalanceService(registry *Registry) BalanceService {
	return &balanceService{
		registry: registry,
		clients:  make(map[int64]*RPCClient),
	}
}

func (s *balanceService) client(chainID int64) (*RPCClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[chainID]; ok {
		return client, nil
	}

	url, err := s.registry.RPCURL(chainID)
	if err != nil {
		return nil, err
	}

	client, err := NewRPCClient([]string{url})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to chain %d", chainID)
	}

	s.clients[chainID] = client

	return client, nil
}

func (s *balanceService) NativeBalance(ctx context.Context, chainID int64, account string) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, errors.Errorf("invalid account address %q", account)
	}

	client, err := s.client(chainID)
	if err != nil {
		return nil, err
	}

	return client.NativeBalance(ctx, common.HexToAddress(account))
}

func (s *balanceService) TokenBalance(ctx context.Context, chainID int64, tokenAddress string, account string) (*big.Int, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, errors.Errorf("invalid token contract address %q", tokenAddress)
	}

	if !common.IsHexAddress(account) {
		return nil, errors.Errorf("invalid account address %q", account)
	}

	client, err := s.client(chainID)
	if err != nil {
		return nil, err
	}

	return client.TokenBalance(ctx, common.HexToAddress(tokenAddress), common.HexToAddress(account))
}

func (s *balanceService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, client := range s.clients {
		client.Close()
	}

	s.clients = make(map[int64]*RPCClient)
}
