package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		marker := "  "
		if network.Selected {
			marker = color.New(color.FgGreen, color.Bold).Sprint("* ")
		}
		switch {
		case network.Error != nil:
			fmt.Fprintf(r.out, "%s❌ %s - Error: %v\n", marker, network.Name, network.Error)
		case network.Simulated:
			fmt.Fprintf(r.out, "%s✅ %s - Chain ID: %d (in-process)\n", marker, network.Name, network.ChainID)
		default:
			fmt.Fprintf(r.out, "%s✅ %s - Chain ID: %d\n", marker, network.Name, network.ChainID)
		}
	}

	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
