package cli

import (
	"fmt"

	"github.com/solar-insurance/solar-cli/internal/cli/render"
	"github.com/solar-insurance/solar-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		yes      bool
		postCall string
	)

	cmd := &cobra.Command{
		Use:   "deploy [CONTRACT]",
		Short: "Deploy a compiled contract",
		Long: `Deploy a compiled contract with no constructor arguments and print its address.

CONTRACT defaults to SolarInsurance. Use the source:Name form when several
artifacts share a name. Deployments to live networks ask for confirmation
unless --yes or --non-interactive is given.

Examples:
  solar deploy                                  # Deploy SolarInsurance to sepolia
  solar deploy --network simulated --call owner # Deploy in-process and read owner()
  solar deploy contracts/SolarInsurance.sol:SolarInsurance --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.DeployContractParams{
				Confirm:  !yes,
				PostCall: postCall,
			}
			if len(args) > 0 {
				params.ContractName = args[0]
			}

			result, err := app.DeployContract.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := render.NewDeployRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}
			if result.PostCallErr != nil {
				return fmt.Errorf("post-deploy call failed: %w", result.PostCallErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&postCall, "call", "", "Read-only method to call on the new instance")

	return cmd
}
