package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
)

// ContractRepository provides access to compiled contracts
type ContractRepository interface {
	GetContract(ctx context.Context, name string) (*models.Contract, error)
	ListContracts(ctx context.Context) ([]*models.Contract, error)
}

// ContractFinder returns every artifact matching a contract name
type ContractFinder interface {
	FindContracts(ctx context.Context, name string) ([]*models.Contract, error)
	ListContracts(ctx context.Context) ([]*models.Contract, error)
}

// ContractSelector lets the operator pick among several matching contracts
type ContractSelector interface {
	SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error)
}

// ContractDeployer broadcasts contract creations and waits for their inclusion
type ContractDeployer interface {
	SubmitDeployment(ctx context.Context, contract *models.Contract) (*models.PendingDeployment, error)
	WaitForDeployment(ctx context.Context, pending *models.PendingDeployment) (*models.Deployment, error)
}

// ContractCaller performs read-only calls against a deployed contract
type ContractCaller interface {
	Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error)
}

// AccountReader reads signer identity and balances
type AccountReader interface {
	SignerAddress(ctx context.Context) (common.Address, error)
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// ContractVerifier submits contract sources to a block explorer
type ContractVerifier interface {
	Verify(ctx context.Context, address common.Address, contract *models.Contract, network *config.Network) (*models.VerificationResult, error)
}

// Confirmer asks the operator to approve irreversible actions
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ExecutionStage represents a stage in the deployment process
type ExecutionStage string

const (
	StageResolving  ExecutionStage = "Resolving"
	StageDeploying  ExecutionStage = "Deploying"
	StageConfirming ExecutionStage = "Confirming"
	StageCalling    ExecutionStage = "Calling"
	StageVerifying  ExecutionStage = "Verifying"
	StageCompleted  ExecutionStage = "Completed"
)
