package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
)

func InitCmd(service app.ServiceInterface) *cobra.Command {
	return &cobra.Command{
		Use:          "init",
		Short:        "Create the sessions file with a section per profile",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.InitConfigs()
			if err != nil {
				return fmt.Errorf("failed to initialise tunnel settings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s. Set a target per profile with 'akaw config show <profile> --target <id>'.\n", resp.ConfigPath)
			return nil
		},
	}
}
