package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// unsetAfter removes variables a test loads into the process environment through .env files
func unsetAfter(t *testing.T, keys ...string) {
	t.Cleanup(func() {
		for _, key := range keys {
			_ = os.Unsetenv(key)
		}
	})
}

func clearCredentials(t *testing.T) {
	for _, key := range []string{"ALCHEMY_API_URL", "ETHERSCAN_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestProviderDefaults(t *testing.T) {
	clearCredentials(t)
	dir := t.TempDir()

	v := viper.New()
	v.Set("project_root", dir)
	v.Set("network", "simulated")

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, "defaults", cfg.ConfigSource)
	assert.Equal(t, filepath.Join(dir, "artifacts"), cfg.ArtifactsDir)
	assert.Equal(t, config.DefaultContractName, cfg.DefaultContract)
	assert.Equal(t, config.DefaultSolidityVersion, cfg.SolidityVersion)
	require.NotNil(t, cfg.Network)
	assert.Equal(t, "simulated", cfg.Network.Name)
	assert.True(t, cfg.Network.Simulated)
	assert.Equal(t, config.SimulatedChainID, cfg.Network.ChainID)
}

func TestProviderDefaultNetworkIsSepolia(t *testing.T) {
	clearCredentials(t)
	t.Setenv("ALCHEMY_API_URL", "https://eth-sepolia.g.alchemy.com/v2/secret")
	dir := t.TempDir()

	v := viper.New()
	v.Set("project_root", dir)

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "sepolia", cfg.Network.Name)
	assert.Equal(t, config.SepoliaChainID, cfg.Network.ChainID)
	assert.Equal(t, "https://eth-sepolia.g.alchemy.com/v2/secret", cfg.Network.RPCURL)
	assert.Equal(t, "https://sepolia.etherscan.io", cfg.Network.ExplorerURL)
	assert.True(t, cfg.Network.IsLive())
}

func TestProviderProjectFile(t *testing.T) {
	clearCredentials(t)
	t.Setenv("SOLAR_TEST_HOLESKY_URL", "https://holesky.example/rpc")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ProjectFile), `
default_network = "holesky"
artifacts = "build/artifacts"
contract = "SolarPolicy"

[solidity]
version = "0.8.24"

[etherscan]
api_key = "FILEKEY"

[networks.holesky]
url = "${SOLAR_TEST_HOLESKY_URL}"
chain_id = 17000
`)

	v := viper.New()
	v.Set("project_root", dir)

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, ProjectFile, cfg.ConfigSource)
	assert.Equal(t, filepath.Join(dir, "build", "artifacts"), cfg.ArtifactsDir)
	assert.Equal(t, "SolarPolicy", cfg.DefaultContract)
	assert.Equal(t, "0.8.24", cfg.SolidityVersion)
	assert.Equal(t, "FILEKEY", cfg.EtherscanAPIKey)

	assert.Equal(t, "holesky", cfg.Network.Name)
	assert.Equal(t, uint64(17000), cfg.Network.ChainID)
	assert.Equal(t, "https://holesky.example/rpc", cfg.Network.RPCURL)
	assert.Equal(t, "https://holesky.etherscan.io", cfg.Network.ExplorerURL)

	// the file adds networks without dropping the built-in ones
	assert.Contains(t, cfg.Project.Networks, "sepolia")
	assert.Contains(t, cfg.Project.Networks, "simulated")
	assert.Contains(t, cfg.Project.Networks, "localhost")

	t.Run("viper values win over the project file", func(t *testing.T) {
		v.Set("etherscan_api_key", "FLAGKEY")
		v.Set("network", "localhost")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "FLAGKEY", cfg.EtherscanAPIKey)
		assert.Equal(t, "localhost", cfg.Network.Name)
	})
}

func TestProviderInvalidProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ProjectFile), "default_network = [unterminated")

	v := viper.New()
	v.Set("project_root", dir)

	_, err := Provider(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse solar.toml")
}

func TestProviderLoadsDotEnv(t *testing.T) {
	clearCredentials(t)
	unsetAfter(t, "SOLAR_TEST_DOTENV_URL", "SOLAR_TEST_DOTENV_LOCAL")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "SOLAR_TEST_DOTENV_URL=https://dotenv.example/rpc\n")
	writeFile(t, filepath.Join(dir, ".env.local"), "SOLAR_TEST_DOTENV_LOCAL=local\n")
	writeFile(t, filepath.Join(dir, ProjectFile), `
[networks.custom]
url = "${SOLAR_TEST_DOTENV_URL}"
chain_id = 31337
`)

	v := viper.New()
	v.Set("project_root", dir)
	v.Set("network", "custom")

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "https://dotenv.example/rpc", cfg.Network.RPCURL)
	assert.Equal(t, "local", os.Getenv("SOLAR_TEST_DOTENV_LOCAL"))
}

func TestProviderNetworkSelection(t *testing.T) {
	clearCredentials(t)
	dir := t.TempDir()

	t.Run("case-insensitive", func(t *testing.T) {
		v := viper.New()
		v.Set("project_root", dir)
		v.Set("network", "SIMULATED")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "simulated", cfg.Network.Name)
	})

	t.Run("unknown network", func(t *testing.T) {
		v := viper.New()
		v.Set("project_root", dir)
		v.Set("network", "mainnet")

		_, err := Provider(v)
		require.ErrorIs(t, err, domain.ErrUnknownNetwork)
		assert.Contains(t, err.Error(), "available: localhost, sepolia, simulated")
	})
}

func TestProviderTrimsCredentials(t *testing.T) {
	clearCredentials(t)
	v := viper.New()
	v.Set("project_root", t.TempDir())
	v.Set("network", "simulated")
	v.Set("private_key", "  0xabc\n")
	v.Set("contract_address", " 0x5FbDB2315678afecb367f032d93F642f64180aa3 ")

	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", cfg.PrivateKey)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.ContractAddress)
}

func TestSetupViper(t *testing.T) {
	t.Setenv("METAMASK_PRIVATE_KEY", "0xkey")
	t.Setenv("ETHERSCAN_API_KEY", "scan")
	t.Setenv("CONTRACT_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	t.Setenv("SOLAR_NETWORK", "localhost")
	t.Setenv("SOLAR_DEBUG", "")

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "solar"}
		cmd.Flags().StringP("network", "n", "", "")
		cmd.Flags().Duration("timeout", 5*time.Minute, "")
		cmd.Flags().Bool("non-interactive", false, "")
		return cmd
	}

	t.Run("environment", func(t *testing.T) {
		v := SetupViper(newCmd())

		assert.Equal(t, "0xkey", v.GetString("private_key"))
		assert.Equal(t, "scan", v.GetString("etherscan_api_key"))
		assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", v.GetString("contract_address"))
		assert.Equal(t, "localhost", v.GetString("network"))
		assert.Equal(t, 5*time.Minute, v.GetDuration("timeout"))
		assert.False(t, v.GetBool("non_interactive"))
	})

	t.Run("explicit flags override environment", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("network", "simulated"))
		require.NoError(t, cmd.Flags().Set("timeout", "30s"))
		require.NoError(t, cmd.Flags().Set("non-interactive", "true"))

		v := SetupViper(cmd)

		assert.Equal(t, "simulated", v.GetString("network"))
		assert.Equal(t, 30*time.Second, v.GetDuration("timeout"))
		assert.True(t, v.GetBool("non_interactive"))
	})
}

func TestFindProjectRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ProjectFile), "")
	nested := filepath.Join(dir, "contracts", "policies")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
