package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// maxSuggestions caps the "did you mean" list for unknown contract names
const maxSuggestions = 3

// Repository indexes compiled artifacts from the artifact store
type Repository struct {
	artifactsDir  string
	contracts     map[string]*models.Contract   // key: "sourceName:ContractName"
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	log           *slog.Logger
	mu            sync.RWMutex
	indexed       bool
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		artifactsDir:  cfg.ArtifactsDir,
		log:           log,
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
	}
}

// Index discovers all artifacts. It runs once per repository.
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	info, err := os.Stat(r.artifactsDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: artifacts directory %s does not exist (compile the contracts first)",
			domain.ErrContractNotFound, r.artifactsDir)
	}

	err = filepath.WalkDir(r.artifactsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" || d.Name() == "cache" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}
		return r.processArtifact(path)
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	r.indexed = true
	r.log.Debug("indexed artifacts", "dir", r.artifactsDir, "contracts", len(r.contracts))
	return nil
}

// processArtifact processes a single artifact file
func (r *Repository) processArtifact(artifactPath string) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		r.log.Debug("skipping unparsable artifact", "path", artifactPath, "error", err)
		return nil
	}
	if artifact.ContractName == "" || len(artifact.ABI) == 0 {
		return nil
	}

	relPath, err := filepath.Rel(r.artifactsDir, artifactPath)
	if err != nil {
		relPath = artifactPath
	}

	contract := &models.Contract{
		Name:         artifact.ContractName,
		Path:         artifact.SourceName,
		ArtifactPath: relPath,
		Artifact:     &artifact,
	}

	r.contracts[contract.FullName()] = contract
	r.contractNames[contract.Name] = append(r.contractNames[contract.Name], contract)
	return nil
}

// GetContract retrieves a contract by name or "sourceName:ContractName"
func (r *Repository) GetContract(ctx context.Context, name string) (*models.Contract, error) {
	matches, err := r.FindContracts(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(matches) > 1 {
		return nil, &domain.AmbiguousContractError{
			Name:    name,
			Matches: lo.Map(matches, func(c *models.Contract, _ int) string { return c.FullName() }),
		}
	}
	return matches[0], nil
}

// FindContracts returns every contract matching name, sorted by full name.
// No match is a ContractNotFoundError.
func (r *Repository) FindContracts(ctx context.Context, name string) ([]*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*models.Contract
	if strings.Contains(name, ":") {
		if contract, ok := r.contracts[name]; ok {
			matches = append(matches, contract)
		}
	} else {
		matches = append(matches, r.contractNames[name]...)
	}
	if len(matches) == 0 {
		return nil, &domain.ContractNotFoundError{Name: name, Suggestions: r.suggest(name)}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].FullName() < matches[j].FullName()
	})
	return matches, nil
}

// ListContracts returns all indexed contracts sorted by full name
func (r *Repository) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	contracts := lo.Values(r.contracts)
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].FullName() < contracts[j].FullName()
	})
	return contracts, nil
}

// suggest returns the closest contract names for an unknown query
func (r *Repository) suggest(query string) []string {
	query = query[strings.LastIndex(query, ":")+1:]
	names := lo.Keys(r.contractNames)
	sort.Strings(names)

	var suggestions []string
	for _, name := range names {
		if strings.EqualFold(name, query) {
			suggestions = append(suggestions, name)
		}
	}
	for _, match := range fuzzy.Find(query, names) {
		if len(suggestions) >= maxSuggestions {
			break
		}
		if !lo.Contains(suggestions, match.Str) {
			suggestions = append(suggestions, match.Str)
		}
	}
	return suggestions
}

// Ensure the adapter implements the interface
var _ usecase.ContractRepository = (*Repository)(nil)
