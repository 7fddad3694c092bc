package root

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdConfig "github.com/tatran0195/akaw/cmd/config"
	cmdConnect "github.com/tatran0195/akaw/cmd/connect"
	cmdMFA "github.com/tatran0195/akaw/cmd/mfa"
	cmdProfiles "github.com/tatran0195/akaw/cmd/profiles"
	cmdTunnels "github.com/tatran0195/akaw/cmd/tunnels"
	"github.com/tatran0195/akaw/internal/app"
	generalutils "github.com/tatran0195/akaw/utils/general"
	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

type RootDependencies struct {
	Service        app.ServiceInterface
	Prompter       promptutils.Prompter
	GeneralManager generalutils.GeneralUtilsInterface
}

func NewRootCmd(deps RootDependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "akaw",
		Short: "AWS MFA and SSM tunnel helper",
		Long: `akaw keeps a virtual MFA secret per AWS profile in the OS keyring, turns it
into short-lived session credentials and opens SSM port-forwarding tunnels
with them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}

	profileDeps := cmdProfiles.ProfilesDependencies{Service: deps.Service, Prompter: deps.Prompter}

	rootCmd.AddCommand(cmdProfiles.NewProfilesCmd(profileDeps))
	rootCmd.AddCommand(cmdProfiles.NewStatusCmd(deps.Service))
	rootCmd.AddCommand(cmdProfiles.NewRemoveCmd(profileDeps))
	rootCmd.AddCommand(cmdMFA.NewMFACmd(cmdMFA.MFADependencies{Service: deps.Service, Prompter: deps.Prompter}))
	rootCmd.AddCommand(cmdConfig.NewConfigCmd(deps.Service))
	rootCmd.AddCommand(cmdConnect.NewConnectCmd(cmdConnect.ConnectDependencies{
		Service:        deps.Service,
		Prompter:       deps.Prompter,
		GeneralManager: deps.GeneralManager,
	}))
	rootCmd.AddCommand(cmdTunnels.NewTunnelsCmd(deps.Service))

	return rootCmd
}
