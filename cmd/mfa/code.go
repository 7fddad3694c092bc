package mfa

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
)

func CodeCmd(service app.ServiceInterface) *cobra.Command {
	return &cobra.Command{
		Use:          "code <profile>",
		Short:        "Print the current MFA code",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.GenerateCode(args[0])
			if err != nil {
				return fmt.Errorf("failed to generate code: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (valid for %ds)\n", result.Code, result.TTL)
			return nil
		},
	}
}
