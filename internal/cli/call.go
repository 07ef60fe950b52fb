package cli

import (
	"github.com/solar-insurance/solar-cli/internal/cli/render"
	"github.com/solar-insurance/solar-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewCallCmd creates the call command
func NewCallCmd() *cobra.Command {
	var (
		address  string
		contract string
	)

	cmd := &cobra.Command{
		Use:     "call [METHOD] [ARGS...]",
		Aliases: []string{"interact"},
		Short:   "Call a read-only method on a deployed contract",
		Long: `Call a view or pure method on a deployed contract and print the decoded result.

METHOD defaults to owner. Arguments are parsed according to the ABI input types.
The address defaults to CONTRACT_ADDRESS.

Examples:
  solar call                                    # Print the contract owner
  solar call owner --address 0x5FbDB2315678afecb367f032d93F642f64180aa3
  solar call balanceOf 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CallContractParams{
				Address:      address,
				ContractName: contract,
			}
			if len(args) > 0 {
				params.Method = args[0]
				params.Args = args[1:]
			}

			result, err := app.CallContract.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewCallRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Contract address (defaults to CONTRACT_ADDRESS)")
	cmd.Flags().StringVarP(&contract, "contract", "c", "", "Contract whose ABI to use (defaults to SolarInsurance)")

	return cmd
}
