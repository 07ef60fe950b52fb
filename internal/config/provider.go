package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ProjectFile is the optional project configuration file name
const ProjectFile = "solar.toml"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// .env must be loaded before the project file so ${VAR} references expand
	LoadEnvFiles(projectRoot)

	project, source, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		ArtifactsDir:    resolvePath(projectRoot, project.Artifacts),
		ConfigSource:    source,
		DefaultContract: project.Contract,
		SolidityVersion: project.Solidity.Version,
		ContractAddress: strings.TrimSpace(v.GetString("contract_address")),
		PrivateKey:      strings.TrimSpace(v.GetString("private_key")),
		EtherscanAPIKey: v.GetString("etherscan_api_key"),
		AlchemyAPIKey:   v.GetString("alchemy_api_key"),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		LogLevel:        v.GetString("log_level"),
		Timeout:         v.GetDuration("timeout"),
		Project:         project,
	}
	if cfg.EtherscanAPIKey == "" {
		cfg.EtherscanAPIKey = project.Etherscan.APIKey
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = project.DefaultNetwork
	}
	network, err := NewNetworkResolver(project).Resolve(networkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
	}
	cfg.Network = network

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find solar.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Tool settings come from SOLAR_* variables
	v.SetEnvPrefix("SOLAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Credentials keep the names the contract project already uses
	_ = v.BindEnv("private_key", "METAMASK_PRIVATE_KEY")
	_ = v.BindEnv("etherscan_api_key", "ETHERSCAN_API_KEY")
	_ = v.BindEnv("alchemy_api_key", "ALCHEMY_API_KEY")
	_ = v.BindEnv("contract_address", "CONTRACT_ADDRESS")

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("log_level", "info")

	bindFlags(v, cmd.Flags())

	return v
}

// bindFlags binds only flags that have been set, so env values are not shadowed by flag defaults
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
