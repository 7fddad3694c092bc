package config

import (
	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
)

func NewConfigCmd(service app.ServiceInterface) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage per-profile tunnel settings",
		Long:  "Show, update or initialise the tunnel settings kept in ~/.aws/sessions.",
	}

	configCmd.AddCommand(ShowCmd(service))
	configCmd.AddCommand(InitCmd(service))

	return configCmd
}
