package app

import (
	"log/slog"

	"github.com/solar-insurance/solar-cli/internal/adapters/blockchain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract *usecase.DeployContract
	CallContract   *usecase.CallContract
	ListNetworks   *usecase.ListNetworks
	ShowConfig     *usecase.ShowConfig
	ShowAccount    *usecase.ShowAccount
	VerifyContract *usecase.VerifyContract

	// Adapters with resources to release
	chains *blockchain.ChainProvider
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	callContract *usecase.CallContract,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	showAccount *usecase.ShowAccount,
	verifyContract *usecase.VerifyContract,
	chains *blockchain.ChainProvider,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		DeployContract: deployContract,
		CallContract:   callContract,
		ListNetworks:   listNetworks,
		ShowConfig:     showConfig,
		ShowAccount:    showAccount,
		VerifyContract: verifyContract,
		chains:         chains,
	}, nil
}

// Close releases network connections held by the app
func (a *App) Close() {
	if a.chains != nil {
		a.chains.Close()
	}
}
