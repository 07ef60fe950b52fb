package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/solar-insurance/solar-cli/internal/adapters/signer"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// Deployer implements usecase.ContractDeployer with bind.DeployContract
type Deployer struct {
	chains *ChainProvider
	keys   *signer.KeySigner
	log    *slog.Logger
}

// NewDeployer creates a new deployer
func NewDeployer(chains *ChainProvider, keys *signer.KeySigner, log *slog.Logger) *Deployer {
	return &Deployer{chains: chains, keys: keys, log: log}
}

// SubmitDeployment signs and broadcasts the creation transaction. No constructor arguments are passed.
func (d *Deployer) SubmitDeployment(ctx context.Context, contract *models.Contract) (*models.PendingDeployment, error) {
	chain, err := d.chains.Chain(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := d.keys.Transactor(ctx, chain.ChainID)
	if err != nil {
		return nil, err
	}

	parsed, err := contract.ParsedABI()
	if err != nil {
		return nil, err
	}
	code, err := contract.CreationCode()
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode for %s: %w", contract.Name, err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoBytecode, contract.Name)
	}

	address, tx, _, err := bind.DeployContract(opts, *parsed, code, chain.Client)
	if err != nil {
		return nil, err
	}
	d.log.Debug("creation transaction sent", "hash", tx.Hash().Hex(), "nonce", tx.Nonce(), "gas", tx.Gas())

	return &models.PendingDeployment{
		Contract: contract,
		Address:  address,
		Deployer: opts.From,
		Tx:       tx,
	}, nil
}

// WaitForDeployment waits for the creation transaction and checks its receipt
func (d *Deployer) WaitForDeployment(ctx context.Context, pending *models.PendingDeployment) (*models.Deployment, error) {
	chain, err := d.chains.Chain(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := chain.WaitMined(ctx, pending.Tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", pending.Tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s in block %d", domain.ErrTransactionReverted, receipt.TxHash.Hex(), receipt.BlockNumber.Uint64())
	}

	address := pending.Address
	if receipt.ContractAddress != address {
		d.log.Warn("receipt address differs from predicted address",
			"predicted", address.Hex(), "receipt", receipt.ContractAddress.Hex())
		address = receipt.ContractAddress
	}

	return &models.Deployment{
		ContractName: pending.Contract.Name,
		Address:      address,
		Deployer:     pending.Deployer,
		TxHash:       receipt.TxHash,
		BlockNumber:  receipt.BlockNumber.Uint64(),
		GasUsed:      receipt.GasUsed,
		Network:      chain.Name,
		ChainID:      chain.ChainID.Uint64(),
	}, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*Deployer)(nil)
