package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

var addressLine = regexp.MustCompile(`Contract address: (0x[0-9a-fA-F]{40})`)

// runSolar executes a fresh root command and returns its stdout
func runSolar(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// setupProject writes artifacts to a temp project and isolates the environment
func setupProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	testutil.WriteArtifacts(t, root)

	t.Setenv("METAMASK_PRIVATE_KEY", testutil.DevKeyHex)
	t.Setenv("CONTRACT_ADDRESS", "")
	t.Setenv("ALCHEMY_API_URL", "")
	t.Setenv("ETHERSCAN_API_KEY", "")
	t.Setenv("SOLAR_NETWORK", "")
	return root
}

func deployOnSimulated(t *testing.T, root string, extra ...string) (string, string) {
	t.Helper()

	args := append([]string{"deploy", "--network", "simulated", "--non-interactive", "--project-root", root}, extra...)
	out, err := runSolar(t, args...)
	require.NoError(t, err)

	match := addressLine.FindStringSubmatch(out)
	require.Len(t, match, 2, "no address in output:\n%s", out)
	return match[1], out
}

func TestDeployThenCall(t *testing.T) {
	root := setupProject(t)

	address, _ := deployOnSimulated(t, root)
	assert.NotEqual(t, "0x0000000000000000000000000000000000000000", address)

	out, err := runSolar(t, "call", "owner", "--address", address,
		"--network", "simulated", "--non-interactive", "--project-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "The contract owner is: "+devAddress)
}

func TestCallDefaultsFromEnvironment(t *testing.T) {
	root := setupProject(t)
	address, _ := deployOnSimulated(t, root)

	// no method and no --address: owner() on CONTRACT_ADDRESS
	t.Setenv("CONTRACT_ADDRESS", address)
	out, err := runSolar(t, "interact", "-n", "simulated", "--non-interactive", "--project-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, devAddress)
}

func TestDeployWithPostCall(t *testing.T) {
	root := setupProject(t)

	_, out := deployOnSimulated(t, root, "--call", "owner")
	assert.Contains(t, out, "The contract owner is: "+devAddress)
}

func TestDeployWithFailingPostCall(t *testing.T) {
	root := setupProject(t)

	out, err := runSolar(t, "deploy", "--network", "simulated", "--non-interactive", "--project-root", root, "--call", "premium")

	// the deployment happened, so the address is printed before the command fails
	require.ErrorIs(t, err, domain.ErrMethodNotFound)
	assert.Contains(t, err.Error(), "post-deploy call failed")
	assert.Regexp(t, addressLine, out)
}

func TestFailedCommandReleasesApp(t *testing.T) {
	root := setupProject(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"call", "--address", "0x000000000000000000000000000000000000dEaD",
		"--network", "simulated", "--non-interactive", "--project-root", root})

	require.ErrorIs(t, cmd.Execute(), domain.ErrNoCode)

	call, _, err := cmd.Find([]string{"call"})
	require.NoError(t, err)
	require.NotNil(t, call.Context())
	assert.ErrorIs(t, call.Context().Err(), context.Canceled)
}

func TestCallErrors(t *testing.T) {
	root := setupProject(t)
	base := []string{"--network", "simulated", "--non-interactive", "--project-root", root}

	t.Run("malformed address", func(t *testing.T) {
		_, err := runSolar(t, append([]string{"call", "--address", "0x1234"}, base...)...)
		require.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("address without code", func(t *testing.T) {
		_, err := runSolar(t, append([]string{"call", "--address", "0x000000000000000000000000000000000000dEaD"}, base...)...)
		require.ErrorIs(t, err, domain.ErrNoCode)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := runSolar(t, append([]string{"call", "premium", "--address", devAddress}, base...)...)
		require.ErrorIs(t, err, domain.ErrMethodNotFound)
	})

	t.Run("state-changing method", func(t *testing.T) {
		_, err := runSolar(t, append([]string{"call", "fund", "1", "--address", devAddress}, base...)...)
		require.ErrorIs(t, err, domain.ErrNotReadOnly)
	})
}

func TestDeployErrors(t *testing.T) {
	root := setupProject(t)
	base := []string{"--network", "simulated", "--non-interactive", "--project-root", root}

	t.Run("unknown contract", func(t *testing.T) {
		_, err := runSolar(t, append([]string{"deploy", "SolarInsurence"}, base...)...)
		require.ErrorIs(t, err, domain.ErrContractNotFound)
	})

	t.Run("interface has no bytecode", func(t *testing.T) {
		_, err := runSolar(t, append([]string{"deploy", "IPolicy"}, base...)...)
		require.ErrorIs(t, err, domain.ErrNoBytecode)
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := runSolar(t, "deploy", "--network", "mainnet", "--non-interactive", "--project-root", root)
		require.ErrorIs(t, err, domain.ErrUnknownNetwork)
	})

	t.Run("live network without RPC URL", func(t *testing.T) {
		_, err := runSolar(t, "deploy", "--yes", "--non-interactive", "--project-root", root)
		require.ErrorIs(t, err, domain.ErrMissingRPCURL)
	})
}

func TestAccountOnSimulated(t *testing.T) {
	root := setupProject(t)

	out, err := runSolar(t, "account", "--network", "simulated", "--non-interactive", "--project-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Address: "+devAddress)
	assert.Contains(t, out, "Network: Simulated (chain 1337)")
}

func TestConfigMasksSecrets(t *testing.T) {
	root := setupProject(t)

	out, err := runSolar(t, "config", "--network", "simulated", "--non-interactive", "--project-root", root)
	require.NoError(t, err)
	assert.NotContains(t, out, testutil.DevKeyHex)
	assert.Contains(t, out, "ac09…ff80")
	assert.Contains(t, out, "simulated")
}

func TestVersion(t *testing.T) {
	out, err := runSolar(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "solar version dev\n", out)
}
