package adapters

import (
	"github.com/google/wire"
	"github.com/solar-insurance/solar-cli/internal/adapters/blockchain"
	internalconfig "github.com/solar-insurance/solar-cli/internal/adapters/config"
	"github.com/solar-insurance/solar-cli/internal/adapters/interactive"
	"github.com/solar-insurance/solar-cli/internal/adapters/progress"
	"github.com/solar-insurance/solar-cli/internal/adapters/repository/contracts"
	"github.com/solar-insurance/solar-cli/internal/adapters/resolvers"
	"github.com/solar-insurance/solar-cli/internal/adapters/signer"
	"github.com/solar-insurance/solar-cli/internal/adapters/verification"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// RepositorySet provides the artifact store
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ContractFinder), new(*contracts.Repository)),

	resolvers.NewContractResolver,
	wire.Bind(new(usecase.ContractRepository), new(*resolvers.ContractResolver)),
)

// BlockchainSet provides go-ethereum backed implementations
var BlockchainSet = wire.NewSet(
	signer.NewKeySigner,
	blockchain.NewChainProvider,

	blockchain.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),

	blockchain.NewCaller,
	wire.Bind(new(usecase.ContractCaller), new(*blockchain.Caller)),

	blockchain.NewAccountReader,
	wire.Bind(new(usecase.AccountReader), new(*blockchain.AccountReader)),
)

// VerificationSet provides explorer verification
var VerificationSet = wire.NewSet(
	verification.NewForgeVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.ForgeVerifier)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
	progress.NewSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	BlockchainSet,
	VerificationSet,
	InteractiveSet,
	ConfigSet,
)
