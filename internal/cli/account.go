package cli

import (
	"github.com/solar-insurance/solar-cli/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewAccountCmd creates the account command
func NewAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the signer address and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			account, err := app.ShowAccount.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewAccountRenderer(cmd.OutOrStdout()).Render(account)
		},
	}
}
