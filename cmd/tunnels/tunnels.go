package tunnels

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
	generalutils "github.com/tatran0195/akaw/utils/general"
)

func NewTunnelsCmd(service app.ServiceInterface) *cobra.Command {
	tunnelsCmd := &cobra.Command{
		Use:   "tunnels",
		Short: "List and stop running tunnels",
	}

	tunnelsCmd.AddCommand(ListCmd(service))
	tunnelsCmd.AddCommand(StopCmd(service))

	return tunnelsCmd
}

func ListCmd(service app.ServiceInterface) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List tunnels started by akaw",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := service.Tunnels()
			if err != nil {
				return fmt.Errorf("failed to list tunnels: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No tunnels running.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tTARGET\tLOCAL\tREMOTE\tPID\tMODE\tSTARTED")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
					s.Profile, s.Target, s.LocalPort, s.RemotePort, s.PID, s.Mode, generalutils.FormatTime(s.StartedAt))
			}
			return w.Flush()
		},
	}
}

func StopCmd(service app.ServiceInterface) *cobra.Command {
	var all bool

	stopCmd := &cobra.Command{
		Use:          "stop [profile]",
		Short:        "Stop the tunnel of a profile, or all of them",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all does not take a profile")
			}
			if !all && len(args) != 1 {
				return fmt.Errorf("specify a profile or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if all {
				stopped, err := service.StopAllTunnels()
				for _, profile := range stopped {
					fmt.Fprintf(out, "Stopped tunnel for %s.\n", profile)
				}
				if err != nil {
					return fmt.Errorf("failed to stop tunnels: %w", err)
				}
				if len(stopped) == 0 {
					fmt.Fprintln(out, "No tunnels running.")
				}
				return nil
			}

			if err := service.StopTunnel(args[0]); err != nil {
				return fmt.Errorf("failed to stop tunnel: %w", err)
			}
			fmt.Fprintf(out, "Stopped tunnel for %s.\n", args[0])
			return nil
		},
	}

	stopCmd.Flags().BoolVarP(&all, "all", "a", false, "Stop every tunnel")

	return stopCmd
}
