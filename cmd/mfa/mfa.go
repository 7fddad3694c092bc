package mfa

import (
	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

type MFADependencies struct {
	Service  app.ServiceInterface
	Prompter promptutils.Prompter
}

func NewMFACmd(deps MFADependencies) *cobra.Command {
	mfaCmd := &cobra.Command{
		Use:   "mfa",
		Short: "Manage the virtual MFA device of a profile",
		Long:  "Enroll or import a virtual MFA device, generate codes from the stored secret, or remove it.",
	}

	mfaCmd.AddCommand(SetupCmd(deps.Service))
	mfaCmd.AddCommand(CodeCmd(deps.Service))
	mfaCmd.AddCommand(RemoveCmd(deps))

	return mfaCmd
}
