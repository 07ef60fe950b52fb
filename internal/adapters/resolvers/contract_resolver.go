package resolvers

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// ContractResolver handles contract resolution and selection
type ContractResolver struct {
	config   *config.RuntimeConfig
	finder   usecase.ContractFinder
	selector usecase.ContractSelector
}

// NewContractResolver creates a new contract resolver
func NewContractResolver(
	cfg *config.RuntimeConfig,
	finder usecase.ContractFinder,
	selector usecase.ContractSelector,
) *ContractResolver {
	return &ContractResolver{
		config:   cfg,
		finder:   finder,
		selector: selector,
	}
}

// GetContract resolves a contract reference, prompting when the name is ambiguous
func (r *ContractResolver) GetContract(ctx context.Context, name string) (*models.Contract, error) {
	contracts, err := r.finder.FindContracts(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(contracts) == 1 {
		return contracts[0], nil
	}

	// Multiple matches - use interactive selector if available
	if r.selector != nil && !r.config.NonInteractive {
		selected, err := r.selector.SelectContract(ctx, contracts, fmt.Sprintf("Multiple contracts named %s. Select one:", name))
		if err != nil {
			return nil, fmt.Errorf("contract selection failed: %w", err)
		}
		return selected, nil
	}

	return nil, &domain.AmbiguousContractError{
		Name:    name,
		Matches: lo.Map(contracts, func(c *models.Contract, _ int) string { return c.FullName() }),
	}
}

// ListContracts returns all known contracts
func (r *ContractResolver) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	return r.finder.ListContracts(ctx)
}

// Ensure the resolver implements the interface
var _ usecase.ContractRepository = (*ContractResolver)(nil)
