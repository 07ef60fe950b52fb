package cli

import (
	"github.com/solar-insurance/solar-cli/internal/cli/render"
	"github.com/solar-insurance/solar-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var contract string

	cmd := &cobra.Command{
		Use:   "verify [ADDRESS]",
		Short: "Verify a deployed contract on Etherscan",
		Long: `Submit the sources of a deployed contract to Etherscan with forge verify-contract.

ADDRESS defaults to CONTRACT_ADDRESS. Requires ETHERSCAN_API_KEY and forge on PATH.
forge compiles the sources from the project root, so a Hardhat project needs a
foundry.toml pointing at its sources:

  [profile.default]
  src = "contracts"
  libs = ["node_modules"]

Examples:
  solar verify                                            # Verify CONTRACT_ADDRESS on sepolia
  solar verify 0x5FbDB2315678afecb367f032d93F642f64180aa3 --contract SolarInsurance`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.VerifyContractParams{ContractName: contract}
			if len(args) > 0 {
				params.Address = args[0]
			}

			result, err := app.VerifyContract.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewVerifyRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&contract, "contract", "c", "", "Contract name or source:Name (defaults to SolarInsurance)")

	return cmd
}
