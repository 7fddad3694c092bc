package mfa

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
)

func SetupCmd(service app.ServiceInterface) *cobra.Command {
	var importQR string

	setupCmd := &cobra.Command{
		Use:   "setup <profile>",
		Short: "Enroll a virtual MFA device for a profile",
		Long: `Create and enable a virtual MFA device for the profile's IAM user and keep
its secret in the OS keyring. With --import-qr the secret is read from the QR
code of a device that already exists instead.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if importQR == "" {
				fmt.Fprintln(out, "Creating virtual MFA device. Enabling it takes about 30 seconds...")
			}

			result, err := service.SetupMFA(cmd.Context(), args[0], importQR)
			if err != nil {
				return fmt.Errorf("MFA setup failed: %w", err)
			}

			if result.Imported {
				fmt.Fprintf(out, "Imported MFA secret for profile %s (device %s).\n", result.Profile, result.Serial)
			} else {
				fmt.Fprintf(out, "MFA device %s enabled for profile %s.\n", result.Serial, result.Profile)
			}
			return nil
		},
	}

	setupCmd.Flags().StringVar(&importQR, "import-qr", "", "Path to the QR code image of an existing MFA device")

	return setupCmd
}
