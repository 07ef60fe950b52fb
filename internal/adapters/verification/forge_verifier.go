package verification

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// FoundryConfigFile is the forge project file verification relies on
const FoundryConfigFile = "foundry.toml"

// CommandRunner runs forge with args in dir and returns the combined output
type CommandRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// ForgeVerifier submits sources to Etherscan through `forge verify-contract`
type ForgeVerifier struct {
	projectRoot     string
	apiKey          string
	compilerVersion string
	run             CommandRunner
	log             *slog.Logger
}

// NewForgeVerifier creates a verifier for the project root
func NewForgeVerifier(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeVerifier {
	return &ForgeVerifier{
		projectRoot:     cfg.ProjectRoot,
		apiKey:          cfg.EtherscanAPIKey,
		compilerVersion: cfg.SolidityVersion,
		run:             runForge,
		log:             log,
	}
}

// WithRunner replaces the forge invocation
func (v *ForgeVerifier) WithRunner(run CommandRunner) *ForgeVerifier {
	v.run = run
	return v
}

func runForge(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Verify performs contract verification
func (v *ForgeVerifier) Verify(ctx context.Context, address common.Address, contract *models.Contract, network *config.Network) (*models.VerificationResult, error) {
	if v.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	// forge resolves contracts/<Name>.sol through foundry.toml (src = "contracts" for Hardhat layouts)
	if _, err := os.Stat(filepath.Join(v.projectRoot, FoundryConfigFile)); err != nil {
		v.log.Warn("no foundry.toml in project root, forge may not find the sources",
			"root", v.projectRoot, "hint", `add foundry.toml with src = "contracts"`)
	}

	args := v.BuildArgs(address, contract, network)
	v.log.Debug("running forge", "args", strings.Join(redact(args, v.apiKey), " "))

	output, err := v.run(ctx, v.projectRoot, args...)
	outputStr := strings.TrimSpace(string(output))

	result := &models.VerificationResult{
		Address:  address,
		Contract: contract.FullName(),
		Verifier: "etherscan",
		URL:      ExplorerURL(network, address),
		Output:   outputStr,
	}

	if alreadyVerified(outputStr) {
		result.AlreadyVerified = true
		return result, nil
	}
	if err != nil {
		if outputStr == "" {
			outputStr = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrVerificationFailed, outputStr)
	}
	if !strings.Contains(outputStr, "successfully verified") && !strings.Contains(outputStr, "Pass - Verified") {
		return nil, fmt.Errorf("%w: status unclear: %s", domain.ErrVerificationFailed, outputStr)
	}
	return result, nil
}

// BuildArgs builds the forge verify-contract arguments
func (v *ForgeVerifier) BuildArgs(address common.Address, contract *models.Contract, network *config.Network) []string {
	args := []string{
		"verify-contract",
		address.Hex(),
		contract.FullName(),
		"--chain-id", fmt.Sprintf("%d", network.ChainID),
		"--etherscan-api-key", v.apiKey,
		"--root", v.projectRoot,
		"--watch",
	}
	if v.compilerVersion != "" {
		args = append(args, "--compiler-version", v.compilerVersion)
	}
	return args
}

// ExplorerURL links to the contract's code tab on the network explorer
func ExplorerURL(network *config.Network, address common.Address) string {
	if network == nil || network.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s#code", strings.TrimSuffix(network.ExplorerURL, "/"), address.Hex())
}

func alreadyVerified(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "already verified")
}

func redact(args []string, secret string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if secret != "" && a == secret {
			a = "<redacted>"
		}
		out[i] = a
	}
	return out
}

// Ensure the adapter implements the interface
var _ usecase.ContractVerifier = (*ForgeVerifier)(nil)
