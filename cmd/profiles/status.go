package profiles

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
)

func NewStatusCmd(service app.ServiceInterface) *cobra.Command {
	return &cobra.Command{
		Use:          "status <profile>",
		Short:        "Show the MFA status of a profile",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := service.CheckStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to check status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile      : %s\n", report.Profile)
			fmt.Fprintf(out, "MFA secret   : %s\n", yesNo(report.HasMFASecret))
			if report.Identity == nil {
				fmt.Fprintln(out, "Identity     : unavailable")
				return nil
			}
			fmt.Fprintf(out, "Account      : %s\n", report.Identity.Account)
			fmt.Fprintf(out, "Username     : %s\n", report.Identity.Username)
			fmt.Fprintf(out, "ARN          : %s\n", report.Identity.Arn)
			fmt.Fprintf(out, "MFA device   : %s\n", orDash(report.MFADevice))
			return nil
		},
	}
}
