//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/solar-insurance/solar-cli/internal/adapters"
	"github.com/solar-insurance/solar-cli/internal/config"
	"github.com/solar-insurance/solar-cli/internal/logging"
	"github.com/solar-insurance/solar-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewCallContract,
		usecase.NewDeployContract,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewShowAccount,
		usecase.NewVerifyContract,

		// App
		NewApp,
	)
	return nil, nil
}
