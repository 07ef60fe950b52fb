package config

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/solar-insurance/solar-cli/internal/config"
	"github.com/solar-insurance/solar-cli/internal/domain"
	domainconfig "github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// chainIDTimeout bounds the eth_chainId probe per network
const chainIDTimeout = 10 * time.Second

// NetworkResolverAdapter adapts the config.NetworkResolver to the usecase.NetworkResolver interface
// and confirms chain IDs against the live endpoints
type NetworkResolverAdapter struct {
	resolver *config.NetworkResolver
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(cfg *domainconfig.RuntimeConfig) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{
		resolver: config.NewNetworkResolver(cfg.Project),
	}
}

// GetNetworks returns all configured network names
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	return a.resolver.Names()
}

// ResolveNetwork resolves a network name and fetches its chain ID from the RPC endpoint
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*domainconfig.Network, error) {
	network, err := a.resolver.Resolve(networkName)
	if err != nil {
		return nil, err
	}
	if network.Simulated {
		return network, nil
	}
	if network.RPCURL == "" {
		return nil, fmt.Errorf("%w for network %s", domain.ErrMissingRPCURL, network.Name)
	}

	chainID, err := fetchChainID(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain ID for network %s: %w", network.Name, err)
	}
	if network.ChainID != 0 && network.ChainID != chainID {
		return nil, fmt.Errorf("%w: %s is configured as %d but the endpoint reports %d",
			domain.ErrChainIDMismatch, network.Name, network.ChainID, chainID)
	}
	network.ChainID = chainID
	return network, nil
}

func fetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, chainIDTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
