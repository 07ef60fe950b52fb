package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// OnchainClient is the subset of node access the adapters need.
// Both *ethclient.Client and the simulated backend client satisfy it.
type OnchainClient interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Chain is a connected provider for one network
type Chain struct {
	Name    string
	ChainID *big.Int
	Client  OnchainClient

	// commit seals pending transactions on simulated chains
	commit func()
	close  func()
}

// WaitMined blocks until tx is included and returns its receipt
func (c *Chain) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if c.commit != nil {
		c.commit()
	}
	return bind.WaitMined(ctx, c.Client, tx)
}

// Close releases the underlying connection
func (c *Chain) Close() {
	if c.close != nil {
		c.close()
	}
}
