package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/solar-insurance/solar-cli/internal/app"
	"github.com/solar-insurance/solar-cli/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cancel context.CancelFunc

	rootCmd := &cobra.Command{
		Use:   "solar",
		Short: "Deploy and query the SolarInsurance contract",
		Long: `solar deploys the compiled SolarInsurance contract to an EVM network and
queries deployed instances with read-only calls.

Artifacts are read from the Hardhat artifacts directory; compile the contracts first.
Credentials come from the environment or a .env file in the project root:
ALCHEMY_API_URL, METAMASK_PRIVATE_KEY, ETHERSCAN_API_KEY and CONTRACT_ADDRESS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cmd.SetContext(ctx)

			appInstance.Log.Debug("configuration loaded",
				"root", appInstance.Config.ProjectRoot,
				"source", appInstance.Config.ConfigSource,
				"network", appInstance.Config.Network.Name,
			)
			return nil
		},
	}

	// cleanup runs after every command; cobra skips post-run hooks when RunE fails
	cleanup := func(cmd *cobra.Command) {
		if cancel != nil {
			cancel()
		}
		if a, err := getApp(cmd); err == nil {
			a.Close()
		}
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		cleanup(cmd)
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (sepolia, simulated, localhost or one from solar.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Timeout for the whole command")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with solar.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	callCmd := NewCallCmd()
	callCmd.GroupID = "main"
	rootCmd.AddCommand(callCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "main"
	rootCmd.AddCommand(verifyCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	accountCmd := NewAccountCmd()
	accountCmd.GroupID = "management"
	rootCmd.AddCommand(accountCmd)

	rootCmd.AddCommand(NewVersionCmd())

	for _, sub := range rootCmd.Commands() {
		cleanupOnError(sub, cleanup)
	}

	return rootCmd
}

// cleanupOnError releases the app when the command fails
func cleanupOnError(cmd *cobra.Command, cleanup func(*cobra.Command)) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			cleanup(cmd)
		}
		return err
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
