package config

import (
	"context"
	"testing"

	"github.com/solar-insurance/solar-cli/internal/domain"
	domainconfig "github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkResolverAdapter(t *testing.T) {
	ctx := context.Background()
	adapter := NewNetworkResolverAdapter(&domainconfig.RuntimeConfig{
		Project: &domainconfig.ProjectConfig{
			Networks: map[string]domainconfig.NetworkConfig{
				"sepolia":   {ChainID: domainconfig.SepoliaChainID},
				"simulated": {Simulated: true},
			},
		},
	})

	assert.Equal(t, []string{"sepolia", "simulated"}, adapter.GetNetworks(ctx))

	t.Run("simulated network is not dialed", func(t *testing.T) {
		network, err := adapter.ResolveNetwork(ctx, "simulated")
		require.NoError(t, err)
		assert.Equal(t, domainconfig.SimulatedChainID, network.ChainID)
		assert.True(t, network.Simulated)
	})

	t.Run("missing rpc url", func(t *testing.T) {
		_, err := adapter.ResolveNetwork(ctx, "sepolia")
		require.ErrorIs(t, err, domain.ErrMissingRPCURL)
		assert.Contains(t, err.Error(), "sepolia")
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := adapter.ResolveNetwork(ctx, "mainnet")
		require.ErrorIs(t, err, domain.ErrUnknownNetwork)
	})
}
