package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
)

// NetworkResolver resolves network names against the project networks
type NetworkResolver struct {
	networks map[string]config.NetworkConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	return &NetworkResolver{
		networks: project.Networks,
	}
}

// Names returns all configured network names, sorted
func (r *NetworkResolver) Names() []string {
	names := lo.Keys(r.networks)
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its configuration.
// Lookup is case-insensitive; a ChainID of 0 means "ask the RPC endpoint".
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if networkName == "" {
		return nil, fmt.Errorf("%w: network not specified", domain.ErrUnknownNetwork)
	}

	name, ok := networkName, false
	if _, ok = r.networks[networkName]; !ok {
		// sorted names keep the pick stable when keys differ only in case
		name, ok = lo.Find(r.Names(), func(key string) bool {
			return strings.EqualFold(key, networkName)
		})
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", domain.ErrUnknownNetwork, networkName, strings.Join(r.Names(), ", "))
	}

	network := r.networks[name]
	resolved := &config.Network{
		Name:        name,
		ChainID:     network.ChainID,
		RPCURL:      network.URL,
		ExplorerURL: network.Explorer,
		Simulated:   network.Simulated,
	}
	if resolved.Simulated && resolved.ChainID == 0 {
		resolved.ChainID = config.SimulatedChainID
	}
	if resolved.ExplorerURL == "" {
		resolved.ExplorerURL = DefaultExplorerURL(resolved.ChainID)
	}
	return resolved, nil
}

// DefaultExplorerURL returns the well-known explorer for a chain ID
func DefaultExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case config.SepoliaChainID:
		return "https://sepolia.etherscan.io"
	case 17000:
		return "https://holesky.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	default:
		return ""
	}
}
