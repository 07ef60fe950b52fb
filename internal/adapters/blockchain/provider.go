package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/solar-insurance/solar-cli/internal/adapters/signer"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
)

// ChainProvider connects to the selected network on first use
type ChainProvider struct {
	network *config.Network
	keys    *signer.KeySigner
	log     *slog.Logger

	mu    sync.Mutex
	chain *Chain
}

// NewChainProvider creates a provider for the configured network
func NewChainProvider(cfg *config.RuntimeConfig, keys *signer.KeySigner, log *slog.Logger) *ChainProvider {
	return &ChainProvider{
		network: cfg.Network,
		keys:    keys,
		log:     log,
	}
}

// ProviderFor returns a provider pinned to an already connected chain
func ProviderFor(chain *Chain, keys *signer.KeySigner, log *slog.Logger) *ChainProvider {
	return &ChainProvider{
		network: &config.Network{Name: chain.Name, ChainID: chain.ChainID.Uint64()},
		keys:    keys,
		log:     log,
		chain:   chain,
	}
}

// Chain returns the connected chain
func (p *ChainProvider) Chain(ctx context.Context) (*Chain, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.chain != nil {
		return p.chain, nil
	}
	if p.network == nil {
		return nil, fmt.Errorf("%w: no network selected", domain.ErrUnknownNetwork)
	}

	var (
		chain *Chain
		err   error
	)
	if p.network.Simulated {
		chain, err = p.connectSimulated(ctx)
	} else {
		chain, err = p.dial(ctx)
	}
	if err != nil {
		return nil, err
	}
	p.chain = chain
	return chain, nil
}

func (p *ChainProvider) connectSimulated(ctx context.Context) (*Chain, error) {
	// Calls do not need a signer, so an unusable key only skips funding
	account, err := p.keys.Address()
	if err != nil {
		p.log.Debug("simulated chain without funded signer", "error", err)
	}
	chain, err := SharedSimulatedChain(ctx, account)
	if err != nil {
		return nil, err
	}
	p.log.Debug("connected to simulated chain", "chainId", chain.ChainID)

	// The shared backend outlives this provider, so the view does not close it
	view := *chain
	view.Name = p.network.Name
	view.close = nil
	return &view, nil
}

func (p *ChainProvider) dial(ctx context.Context) (*Chain, error) {
	if p.network.RPCURL == "" {
		return nil, fmt.Errorf("%w for network %s", domain.ErrMissingRPCURL, p.network.Name)
	}

	client, err := ethclient.DialContext(ctx, p.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Sign for the chain the node is actually on
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if p.network.ChainID != 0 && chainID.Uint64() != p.network.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, p.network.ChainID, chainID.Uint64())
	}

	p.log.Debug("connected to network", "network", p.network.Name, "chainId", chainID)
	return &Chain{
		Name:    p.network.Name,
		ChainID: chainID,
		Client:  client,
		close:   client.Close,
	}, nil
}

// Close closes dialed connections. The shared simulated chain stays up for the process.
func (p *ChainProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.chain != nil {
		p.chain.Close()
	}
	p.chain = nil
}
