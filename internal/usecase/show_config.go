package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/solar-insurance/solar-cli/internal/domain/config"
)

// ConfigEntry is a single resolved setting
type ConfigEntry struct {
	Key    string
	Value  string
	Secret bool
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Source  string
	Entries []ConfigEntry
}

// ShowConfig is a use case for showing the resolved runtime configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		config: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	cfg := uc.config

	entries := []ConfigEntry{
		{Key: "project_root", Value: cfg.ProjectRoot},
		{Key: "artifacts", Value: cfg.ArtifactsDir},
		{Key: "contract", Value: cfg.DefaultContract},
		{Key: "solidity", Value: cfg.SolidityVersion},
	}

	if cfg.Network != nil {
		entries = append(entries,
			ConfigEntry{Key: "network", Value: cfg.Network.Name},
			ConfigEntry{Key: "chain_id", Value: strconv.FormatUint(cfg.Network.ChainID, 10)},
		)
		if cfg.Network.Simulated {
			entries = append(entries, ConfigEntry{Key: "rpc_url", Value: "(in-process simulated chain)"})
		} else {
			// Provider URLs usually embed the API key in their path
			entries = append(entries, ConfigEntry{Key: "rpc_url", Value: MaskSecret(cfg.Network.RPCURL), Secret: true})
		}
	}

	entries = append(entries,
		ConfigEntry{Key: "contract_address", Value: cfg.ContractAddress},
		ConfigEntry{Key: "private_key", Value: MaskSecret(cfg.PrivateKey), Secret: true},
		ConfigEntry{Key: "etherscan_api_key", Value: MaskSecret(cfg.EtherscanAPIKey), Secret: true},
		ConfigEntry{Key: "alchemy_api_key", Value: MaskSecret(cfg.AlchemyAPIKey), Secret: true},
		ConfigEntry{Key: "timeout", Value: cfg.Timeout.String()},
		ConfigEntry{Key: "non_interactive", Value: fmt.Sprintf("%t", cfg.NonInteractive)},
		ConfigEntry{Key: "debug", Value: fmt.Sprintf("%t", cfg.Debug)},
	)

	return &ShowConfigResult{
		Source:  cfg.ConfigSource,
		Entries: entries,
	}, nil
}

// MaskSecret keeps the first and last four characters of a secret
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 12 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
