package mfa

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

// RemoveCmd forgets the stored secret. The device stays registered in IAM.
func RemoveCmd(deps MFADependencies) *cobra.Command {
	var yes bool

	removeCmd := &cobra.Command{
		Use:          "remove <profile>",
		Short:        "Remove the stored MFA secret of a profile",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := args[0]

			if !yes {
				ok, err := deps.Prompter.Confirm(fmt.Sprintf("Remove the MFA secret for %s", profile))
				if errors.Is(err, promptutils.ErrInterrupted) {
					return nil
				} else if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := deps.Service.RemoveMFA(profile); err != nil {
				return fmt.Errorf("failed to remove MFA secret: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed MFA secret for profile %s. The device is still registered in IAM.\n", profile)
			return nil
		},
	}

	removeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return removeCmd
}
