package chain

import (
	"github.com/pkg/errors"
)

// Chain describes a network the panel can display and query balances on.
// Supplied by the host, static.
type Chain struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Default public RPC endpoints for well-known chains, used when the host
// config does not pin one.
var defaultRPCURLs = map[int64]string{
	1:        "https://eth.llamarpc.com",
	137:      "https://polygon.llamarpc.com",
	8453:     "https://base.llamarpc.com",
	11155111: "https://eth-sepolia.g.alchemy.com/v2/demo",
}

// Registry resolves chain metadata and RPC endpoints by chain id.
type Registry struct {
	chains map[int64]Chain
}

func NewRegistry(chains []Chain) (*Registry, error) {
	byID := make(map[int64]Chain, len(chains))

	for _, c := range chains {
		if c.ID <= 0 {
			return nil, errors.Errorf("invalid chain id %d", c.ID)
		}

		if c.Name == "" {
			return nil, errors.Errorf("chain %d has no name", c.ID)
		}

		if _, exists := byID[c.ID]; exists {
			return nil, errors.Errorf("duplicate chain id %d", c.ID)
		}

		byID[c.ID] = c
	}

	return &Registry{chains: byID}, nil
}

// Get returns the chain metadata for the given id.
func (r *Registry) Get(chainID int64) (Chain, bool) {
	c, ok := r.chains[chainID]
	return c, ok
}

// List returns all configured chains.
func (r *Registry) List() []Chain {
	chains := make([]Chain, 0, len(r.chains))
	for _, c := range r.chains {
		chains = append(chains, c)
	}

	return chains
}

// RPCURL resolves the endpoint for a chain, preferring the host-pinned
// URL over the public default.
func (r *Registry) RPCURL(chainID int64) (string, error) {
	if c, ok := r.chains[chainID]; ok && c.RPCURL != "" {
		return c.RPCURL, nil
	}

	if url, ok := defaultRPCURLs[chainID]; ok {
		return url, nil
	}

	return "", errors.Errorf("no RPC endpoint configured for chain %d", chainID)
}
