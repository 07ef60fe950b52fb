package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
)

// DefaultReadMethod is the accessor invoked when no method is given
const DefaultReadMethod = "owner"

// CallContractParams contains parameters for a read-only call
type CallContractParams struct {
	// Address of the deployed instance; empty means CONTRACT_ADDRESS
	Address string
	// ContractName selects the ABI; empty means the configured default contract
	ContractName string
	Method       string
	Args         []string
}

// CallContractResult contains the result of a read-only call
type CallContractResult struct {
	Result *models.CallResult
}

// CallContract is the use case for invoking a read-only method on a deployed contract
type CallContract struct {
	config    *config.RuntimeConfig
	contracts ContractRepository
	caller    ContractCaller
	sink      ProgressSink
}

// NewCallContract creates a new CallContract use case
func NewCallContract(cfg *config.RuntimeConfig, contracts ContractRepository, caller ContractCaller, sink ProgressSink) *CallContract {
	return &CallContract{
		config:    cfg,
		contracts: contracts,
		caller:    caller,
		sink:      sink,
	}
}

// Run executes the interaction workflow
func (uc *CallContract) Run(ctx context.Context, params CallContractParams) (*CallContractResult, error) {
	address := params.Address
	if address == "" {
		address = uc.config.ContractAddress
	}
	if address == "" {
		return nil, fmt.Errorf("%w: no contract address given (set CONTRACT_ADDRESS or pass --address)", domain.ErrInvalidAddress)
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	name := params.ContractName
	if name == "" {
		name = uc.config.DefaultContract
	}
	method := params.Method
	if method == "" {
		method = DefaultReadMethod
	}

	contract, err := uc.contracts.GetContract(ctx, name)
	if err != nil {
		return nil, err
	}
	contractABI, err := contract.ParsedABI()
	if err != nil {
		return nil, err
	}

	abiMethod, ok := contractABI.Methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", domain.ErrMethodNotFound, name, method)
	}
	if !abiMethod.IsConstant() {
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrNotReadOnly, abiMethod.Sig, abiMethod.StateMutability)
	}

	args, err := ParseCallArgs(abiMethod.Inputs, params.Args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abiMethod.Sig, err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCalling,
		Message: fmt.Sprintf("Calling %s on %s", abiMethod.Sig, address),
		Spinner: true,
	})

	target := common.HexToAddress(address)
	values, err := uc.caller.Call(ctx, target, contractABI, method, args...)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, fmt.Errorf("call to %s failed: %w", abiMethod.Sig, err)
	}

	return &CallContractResult{
		Result: &models.CallResult{
			Address: target,
			Method:  method,
			Outputs: abiMethod.Outputs,
			Values:  values,
		},
	}, nil
}
