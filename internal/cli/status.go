package cli

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the running OpenVPN connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := a.activeProfile(cmd, a.service())
			if err != nil {
				return err
			}

			a.printer.CurrentConnection(current)
			return nil
		},
	}
}
