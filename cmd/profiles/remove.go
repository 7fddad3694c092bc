package profiles

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

// NewRemoveCmd deletes the MFA secret, cached credentials and tunnel config
// stored for a profile. The AWS profile itself is kept.
func NewRemoveCmd(deps ProfilesDependencies) *cobra.Command {
	var yes bool

	removeCmd := &cobra.Command{
		Use:          "remove <profile>",
		Short:        "Remove everything akaw stored for a profile",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := args[0]

			if !yes {
				ok, err := deps.Prompter.Confirm(fmt.Sprintf("Remove MFA secret, cached credentials and tunnel config for %s", profile))
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

			if err := deps.Service.RemoveProfile(profile); err != nil {
				return fmt.Errorf("failed to remove profile %s: %w", profile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed akaw data for profile %s.\n", profile)
			return nil
		},
	}

	removeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return removeCmd
}
