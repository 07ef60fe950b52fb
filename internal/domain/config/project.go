package config

// ProjectConfig mirrors solar.toml
type ProjectConfig struct {
	DefaultNetwork string                   `toml:"default_network"`
	Artifacts      string                   `toml:"artifacts"`
	Contract       string                   `toml:"contract"`
	Solidity       SolidityConfig           `toml:"solidity"`
	Networks       map[string]NetworkConfig `toml:"networks"`
	Etherscan      EtherscanConfig          `toml:"etherscan"`
}

// SolidityConfig holds compiler settings used for verification
type SolidityConfig struct {
	Version string `toml:"version"`
}

// NetworkConfig is a network entry in solar.toml
type NetworkConfig struct {
	URL       string `toml:"url,omitempty"`
	ChainID   uint64 `toml:"chain_id,omitempty"`
	Explorer  string `toml:"explorer,omitempty"`
	Simulated bool   `toml:"simulated,omitempty"`
}

// EtherscanConfig represents the explorer verification settings
type EtherscanConfig struct {
	APIKey string `toml:"api_key,omitempty"`
	URL    string `toml:"url,omitempty"`
}

const (
	DefaultContractName    = "SolarInsurance"
	DefaultSolidityVersion = "0.8.22"
	DefaultNetworkName     = "sepolia"
	DefaultArtifactsDir    = "artifacts"
	SimulatedNetworkName   = "simulated"
	LocalhostNetworkName   = "localhost"
)

// DefaultProjectConfig returns the configuration used when no solar.toml exists.
// RPC and key values are ${VAR} references expanded at load time.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		DefaultNetwork: DefaultNetworkName,
		Artifacts:      DefaultArtifactsDir,
		Contract:       DefaultContractName,
		Solidity:       SolidityConfig{Version: DefaultSolidityVersion},
		Networks: map[string]NetworkConfig{
			DefaultNetworkName: {
				URL:      "${ALCHEMY_API_URL}",
				ChainID:  SepoliaChainID,
				Explorer: "https://sepolia.etherscan.io",
			},
			SimulatedNetworkName: {
				ChainID:   SimulatedChainID,
				Simulated: true,
			},
			LocalhostNetworkName: {
				URL:     "http://127.0.0.1:8545",
				ChainID: LocalhostChainID,
			},
		},
		Etherscan: EtherscanConfig{
			APIKey: "${ETHERSCAN_API_KEY}",
		},
	}
}
