package profiles

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

type ProfilesDependencies struct {
	Service  app.ServiceInterface
	Prompter promptutils.Prompter
}

func NewProfilesCmd(deps ProfilesDependencies) *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect AWS profiles",
		Long:  "List the AWS CLI profiles with their MFA and tunnel configuration state.",
	}

	profilesCmd.AddCommand(ListCmd(deps.Service))

	return profilesCmd
}

func ListCmd(service app.ServiceInterface) *cobra.Command {
	var namesOnly bool

	listCmd := &cobra.Command{
		Use:          "list",
		Short:        "List AWS profiles",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if namesOnly {
				names, err := service.ProfileNames()
				if err != nil {
					return fmt.Errorf("failed to list profiles: %w", err)
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			list, err := service.ListProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tREGION\tMFA\tCONFIG\tMFA DEVICE")
			for _, p := range list.Profiles {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, orDash(p.Region), yesNo(p.HasMFA), yesNo(p.HasConfig), orDash(p.MFASerial))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if !list.HasConfigurations {
				fmt.Fprintln(out, "\nNo tunnel configurations found. Run 'akaw config init' to create one per profile.")
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&namesOnly, "names", false, "Print profile names only")

	return listCmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
