package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
)

// LoadEnvFiles loads .env and .env.local from the project root.
// Variables already present in the process environment win.
func LoadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}

// LoadProjectConfig reads solar.toml on top of the built-in defaults.
// Returns the merged config and its source ("solar.toml" or "defaults").
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	cfg := config.DefaultProjectConfig()
	source := "defaults"

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(path); err == nil {
		var file config.ProjectConfig
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
		}
		mergeProjectConfig(cfg, &file)
		source = ProjectFile
	}

	expandProjectConfig(cfg)
	return cfg, source, nil
}

// mergeProjectConfig overlays non-empty file values on the defaults.
// Networks are merged by name, so a file can add networks without restating the defaults.
func mergeProjectConfig(dst, src *config.ProjectConfig) {
	if src.DefaultNetwork != "" {
		dst.DefaultNetwork = src.DefaultNetwork
	}
	if src.Artifacts != "" {
		dst.Artifacts = src.Artifacts
	}
	if src.Contract != "" {
		dst.Contract = src.Contract
	}
	if src.Solidity.Version != "" {
		dst.Solidity.Version = src.Solidity.Version
	}
	if src.Etherscan.APIKey != "" {
		dst.Etherscan.APIKey = src.Etherscan.APIKey
	}
	if src.Etherscan.URL != "" {
		dst.Etherscan.URL = src.Etherscan.URL
	}
	for name, network := range src.Networks {
		dst.Networks[name] = network
	}
}

// expandProjectConfig resolves ${VAR} references against the environment
func expandProjectConfig(cfg *config.ProjectConfig) {
	for name, network := range cfg.Networks {
		network.URL = os.ExpandEnv(network.URL)
		network.Explorer = os.ExpandEnv(network.Explorer)
		cfg.Networks[name] = network
	}
	cfg.Etherscan.APIKey = os.ExpandEnv(cfg.Etherscan.APIKey)
	cfg.Etherscan.URL = os.ExpandEnv(cfg.Etherscan.URL)
	cfg.Artifacts = os.ExpandEnv(cfg.Artifacts)
}
