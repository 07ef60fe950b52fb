package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is built once per command and injected into use cases and adapters
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactsDir string // absolute path to the compiled artifact store
	ConfigSource string // "solar.toml" or "defaults"

	// Target chain, resolved from the project networks
	Network *Network

	// Contract settings
	DefaultContract string
	SolidityVersion string
	ContractAddress string // CONTRACT_ADDRESS, used by call and verify

	// Credentials (never rendered unmasked)
	PrivateKey      string
	EtherscanAPIKey string
	AlchemyAPIKey   string

	// Execution settings
	Debug          bool
	NonInteractive bool
	LogLevel       string
	Timeout        time.Duration

	// Resolved project file
	Project *ProjectConfig
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name"`
	ChainID     uint64 `json:"chainId"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
	// Simulated networks run an in-process chain instead of dialing RPCURL
	Simulated bool `json:"simulated,omitempty"`
}

// IsLive reports whether deployments on this network cost real gas
func (n *Network) IsLive() bool {
	return n != nil && !n.Simulated && n.ChainID != SimulatedChainID && n.ChainID != LocalhostChainID
}

const (
	// SimulatedChainID is the chain ID of the in-process simulated backend
	SimulatedChainID uint64 = 1337
	// LocalhostChainID is the conventional chain ID of a local development node
	LocalhostChainID uint64 = 31337
	// SepoliaChainID is the chain ID of the Sepolia testnet
	SepoliaChainID uint64 = 11155111
)
