package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/adapters/signer"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// AccountReader implements usecase.AccountReader
type AccountReader struct {
	chains *ChainProvider
	keys   *signer.KeySigner
}

// NewAccountReader creates a new account reader
func NewAccountReader(chains *ChainProvider, keys *signer.KeySigner) *AccountReader {
	return &AccountReader{chains: chains, keys: keys}
}

// SignerAddress returns the address derived from the configured key
func (a *AccountReader) SignerAddress(ctx context.Context) (common.Address, error) {
	return a.keys.Address()
}

// BalanceAt returns the latest balance of address in wei
func (a *AccountReader) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	chain, err := a.chains.Chain(ctx)
	if err != nil {
		return nil, err
	}
	return chain.Client.BalanceAt(ctx, address, nil)
}

var _ usecase.AccountReader = (*AccountReader)(nil)
