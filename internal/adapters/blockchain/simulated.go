package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
)

// faucetBalance is the genesis balance of the shared chain's faucet
var faucetBalance = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(params.Ether))

// DripAmount is what a new signer receives on the shared simulated chain
var DripAmount = new(big.Int).Mul(big.NewInt(100), big.NewInt(params.Ether))

// NewSimulatedChain starts an in-process chain with the given genesis balances.
// Transactions are mined as soon as they are awaited.
func NewSimulatedChain(alloc types.GenesisAlloc) *Chain {
	backend := simulated.NewBackend(alloc)
	return &Chain{
		Name:    config.SimulatedNetworkName,
		ChainID: new(big.Int).Set(params.AllDevChainProtocolChanges.ChainID),
		Client:  backend.Client(),
		commit:  func() { backend.Commit() },
		close:   func() { _ = backend.Close() },
	}
}

// sharedChain is one simulated chain per process so that a deployment made by
// one command is visible to the next.
type sharedChain struct {
	mu     sync.Mutex
	chain  *Chain
	faucet *ecdsa.PrivateKey
	funded map[common.Address]bool
}

var shared sharedChain

// SharedSimulatedChain returns the process-wide simulated chain, funding account
// from the faucet the first time it is seen.
func SharedSimulatedChain(ctx context.Context, account common.Address) (*Chain, error) {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.chain == nil {
		faucet, err := crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("failed to create faucet key: %w", err)
		}
		shared.faucet = faucet
		shared.funded = make(map[common.Address]bool)
		shared.chain = NewSimulatedChain(types.GenesisAlloc{
			crypto.PubkeyToAddress(faucet.PublicKey): {Balance: faucetBalance},
		})
	}

	if account != (common.Address{}) && !shared.funded[account] {
		if err := drip(ctx, shared.chain, shared.faucet, account, DripAmount); err != nil {
			return nil, fmt.Errorf("failed to fund %s: %w", account.Hex(), err)
		}
		shared.funded[account] = true
	}
	return shared.chain, nil
}

// drip transfers value from the faucet and waits for inclusion
func drip(ctx context.Context, chain *Chain, faucet *ecdsa.PrivateKey, to common.Address, value *big.Int) error {
	opts, err := bind.NewKeyedTransactorWithChainID(faucet, chain.ChainID)
	if err != nil {
		return err
	}
	opts.Context = ctx
	opts.Value = value
	// plain transfer, skip estimation against an address without code
	opts.GasLimit = params.TxGas

	recipient := bind.NewBoundContract(to, abi.ABI{}, chain.Client, chain.Client, chain.Client)
	tx, err := recipient.Transfer(opts)
	if err != nil {
		return err
	}
	receipt, err := chain.WaitMined(ctx, tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("faucet transfer %s failed", tx.Hash().Hex())
	}
	return nil
}
