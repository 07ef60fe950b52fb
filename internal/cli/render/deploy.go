package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// DeployRenderer renders deployment results
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render prints the contract address line followed by transaction detail
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	d := result.Deployment

	fmt.Fprintf(r.out, "Contract address: %s\n", d.Address.Hex())

	faint := color.New(color.Faint)
	faint.Fprintf(r.out, "  Contract:    %s\n", d.ContractName)
	faint.Fprintf(r.out, "  Network:     %s (chain %d)\n", d.Network, d.ChainID)
	faint.Fprintf(r.out, "  Deployer:    %s\n", d.Deployer.Hex())
	faint.Fprintf(r.out, "  Transaction: %s\n", d.TxHash.Hex())
	faint.Fprintf(r.out, "  Block:       %d\n", d.BlockNumber)
	faint.Fprintf(r.out, "  Gas used:    %d\n", d.GasUsed)

	if result.PostCall != nil {
		if err := NewCallRenderer(r.out).Render(&usecase.CallContractResult{Result: result.PostCall}); err != nil {
			return err
		}
	}
	return nil
}

var _ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
