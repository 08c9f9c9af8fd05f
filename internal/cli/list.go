package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available OpenVPN profiles, marking the running one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.service()

			profiles, err := a.profiles(svc)
			if err != nil {
				return err
			}

			current, err := a.activeProfile(cmd, svc)
			if err != nil {
				return err
			}

			a.printer.Profiles(profiles, current)
			return nil
		},
	}
}
