package usecase

import (
	"context"
	"fmt"

	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
)

// ShowAccount reports the configured signer and its balance
type ShowAccount struct {
	config   *config.RuntimeConfig
	accounts AccountReader
}

// NewShowAccount creates a new ShowAccount use case
func NewShowAccount(cfg *config.RuntimeConfig, accounts AccountReader) *ShowAccount {
	return &ShowAccount{
		config:   cfg,
		accounts: accounts,
	}
}

// Run executes the use case
func (uc *ShowAccount) Run(ctx context.Context) (*models.Account, error) {
	address, err := uc.accounts.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := uc.accounts.BalanceAt(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance of %s: %w", address.Hex(), err)
	}

	account := &models.Account{
		Address: address,
		Balance: balance,
	}
	if uc.config.Network != nil {
		account.Network = uc.config.Network.Name
		account.ChainID = uc.config.Network.ChainID
	}
	return account, nil
}
