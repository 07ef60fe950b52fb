package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	// ContractName selects the artifact; empty means the configured default contract
	ContractName string
	// Confirm asks the operator before broadcasting to a live network
	Confirm bool
	// PostCall is an optional read-only method invoked on the new instance
	PostCall string
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Deployment  *models.Deployment
	PostCall    *models.CallResult
	PostCallErr error
}

// DeployContract is the use case for deploying a compiled contract with no constructor arguments
type DeployContract struct {
	config    *config.RuntimeConfig
	contracts ContractRepository
	deployer  ContractDeployer
	caller    *CallContract
	confirmer Confirmer
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	contracts ContractRepository,
	deployer ContractDeployer,
	caller *CallContract,
	confirmer Confirmer,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		contracts: contracts,
		deployer:  deployer,
		caller:    caller,
		confirmer: confirmer,
		sink:      sink,
		log:       log,
	}
}

// Run executes the deployment workflow: resolve, submit, wait, report.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	name := params.ContractName
	if name == "" {
		name = uc.config.DefaultContract
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving artifact %s", name),
	})

	contract, err := uc.contracts.GetContract(ctx, name)
	if err != nil {
		return nil, err
	}
	if contract.Artifact == nil || contract.Artifact.Bytecode.IsEmpty() {
		return nil, fmt.Errorf("%w: %s (abstract contract or interface?)", domain.ErrNoBytecode, name)
	}

	network := uc.config.Network
	if params.Confirm && network.IsLive() {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s to %s (chain %d)", name, network.Name, network.ChainID))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrDeploymentCancelled
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying %s to %s", name, network.Name),
		Spinner: true,
	})

	pending, err := uc.deployer.SubmitDeployment(ctx, contract)
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("failed to deploy %s: %w", name, err)
	}
	uc.log.Debug("deployment submitted",
		"contract", name,
		"tx", pending.Tx.Hash().Hex(),
		"address", pending.Address.Hex(),
		"deployer", pending.Deployer.Hex(),
	)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: fmt.Sprintf("Waiting for %s to be mined", pending.Tx.Hash().Hex()),
		Spinner: true,
	})

	deployment, err := uc.deployer.WaitForDeployment(ctx, pending)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", name, err)
	}

	result := &DeployContractResult{Deployment: deployment}

	if params.PostCall != "" {
		callResult, err := uc.caller.Run(ctx, CallContractParams{
			Address:      deployment.Address.Hex(),
			ContractName: name,
			Method:       params.PostCall,
		})
		if err != nil {
			result.PostCallErr = err
		} else {
			result.PostCall = callResult.Result
		}
	}

	return result, nil
}
