package usecase_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"github.com/solar-insurance/solar-cli/internal/testutil"
)

var (
	deployerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runtimeConfig(network *config.Network) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot:     "/project",
		DefaultContract: config.DefaultContractName,
		SolidityVersion: config.DefaultSolidityVersion,
		Network:         network,
		Timeout:         5 * time.Minute,
	}
}

var (
	simulatedNetwork = &config.Network{Name: "simulated", ChainID: config.SimulatedChainID, Simulated: true}
	sepoliaNetwork   = &config.Network{Name: "sepolia", ChainID: config.SepoliaChainID, RPCURL: "https://eth-sepolia.example/v2/key", ExplorerURL: "https://sepolia.etherscan.io"}
)

func solarInsurance() *models.Contract {
	return &models.Contract{
		Name: "SolarInsurance",
		Path: "contracts/SolarInsurance.sol",
		Artifact: &models.Artifact{
			ContractName: "SolarInsurance",
			SourceName:   "contracts/SolarInsurance.sol",
			ABI:          []byte(testutil.OwnableABI),
			Bytecode:     testutil.OwnableBytecode,
		},
	}
}

func policyInterface() *models.Contract {
	return &models.Contract{
		Name: "IPolicy",
		Path: "contracts/interfaces/IPolicy.sol",
		Artifact: &models.Artifact{
			ContractName: "IPolicy",
			SourceName:   "contracts/interfaces/IPolicy.sol",
			ABI:          []byte(`[{"inputs":[],"name":"premium","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`),
			Bytecode:     "0x",
		},
	}
}
