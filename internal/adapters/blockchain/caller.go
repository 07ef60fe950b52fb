package blockchain

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/adapters/signer"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// Caller implements usecase.ContractCaller over a bound contract
type Caller struct {
	chains *ChainProvider
	keys   *signer.KeySigner
}

// NewCaller creates a new caller
func NewCaller(chains *ChainProvider, keys *signer.KeySigner) *Caller {
	return &Caller{chains: chains, keys: keys}
}

// Call binds address and ABI and invokes method as an eth_call
func (c *Caller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error) {
	chain, err := c.chains.Chain(ctx)
	if err != nil {
		return nil, err
	}

	opts := &bind.CallOpts{Context: ctx}
	// The signer is the msg.sender when one is available
	if from, err := c.keys.Address(); err == nil {
		opts.From = from
	}

	contract := bind.NewBoundContract(address, *contractABI, chain.Client, chain.Client, chain.Client)
	var out []any
	if err := contract.Call(opts, &out, method, args...); err != nil {
		if errors.Is(err, bind.ErrNoCode) {
			return nil, domain.ErrNoCode
		}
		return nil, err
	}
	return out, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractCaller = (*Caller)(nil)
