package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
)

// VerifyContractParams contains parameters for explorer verification
type VerifyContractParams struct {
	Address      string
	ContractName string
}

// VerifyContract handles contract verification on block explorers
type VerifyContract struct {
	config    *config.RuntimeConfig
	contracts ContractRepository
	verifier  ContractVerifier
	sink      ProgressSink
}

// NewVerifyContract creates a new verify contract use case
func NewVerifyContract(cfg *config.RuntimeConfig, contracts ContractRepository, verifier ContractVerifier, sink ProgressSink) *VerifyContract {
	return &VerifyContract{
		config:    cfg,
		contracts: contracts,
		verifier:  verifier,
		sink:      sink,
	}
}

// Run executes the use case
func (uc *VerifyContract) Run(ctx context.Context, params VerifyContractParams) (*models.VerificationResult, error) {
	address := params.Address
	if address == "" {
		address = uc.config.ContractAddress
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	network := uc.config.Network
	if network == nil {
		return nil, domain.ErrUnknownNetwork
	}
	if !network.IsLive() {
		return nil, fmt.Errorf("%w: contracts on %s cannot be verified on an explorer", domain.ErrVerificationFailed, network.Name)
	}
	if uc.config.EtherscanAPIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	name := params.ContractName
	if name == "" {
		name = uc.config.DefaultContract
	}
	contract, err := uc.contracts.GetContract(ctx, name)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageVerifying,
		Message: fmt.Sprintf("Verifying %s at %s", contract.FullName(), address),
		Spinner: true,
	})
	result, err := uc.verifier.Verify(ctx, common.HexToAddress(address), contract, network)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, err
	}
	return result, nil
}
