package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tatran0195/akaw/internal/app"
	"github.com/tatran0195/akaw/models"
)

// TunnelFlags binds the tunnel override flags shared by config show and connect.
type TunnelFlags struct {
	Target     string
	LocalPort  uint16
	RemotePort uint16
	Document   string
}

func (f *TunnelFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Target, "target", "t", "", "Instance ID or Name tag of the target")
	cmd.Flags().Uint16VarP(&f.LocalPort, "port", "p", 0, "Local port (default 13389)")
	cmd.Flags().Uint16VarP(&f.RemotePort, "remote-port", "r", 0, "Remote port (default 3389)")
	cmd.Flags().StringVarP(&f.Document, "document", "d", "", "SSM document name (default AWS-StartPortForwardingSession)")
}

func (f *TunnelFlags) Overrides() models.SessionOverrides {
	return models.SessionOverrides{
		Target:       f.Target,
		LocalPort:    f.LocalPort,
		RemotePort:   f.RemotePort,
		DocumentName: f.Document,
	}
}

func ShowCmd(service app.ServiceInterface) *cobra.Command {
	var flags TunnelFlags

	showCmd := &cobra.Command{
		Use:   "show <profile>",
		Short: "Show the tunnel settings of a profile",
		Long: `Show the tunnel settings stored for a profile. Any of --target, --port,
--remote-port or --document is written to the sessions file first.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.ShowConfig(args[0], flags.Overrides())
			if err != nil {
				return fmt.Errorf("failed to show config: %w", err)
			}
			printConfig(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	flags.Register(showCmd)

	return showCmd
}

func printConfig(w io.Writer, resp *models.ConfigResponse) {
	if resp.Updated {
		fmt.Fprintf(w, "Updated %s\n\n", resp.ConfigPath)
	}
	if resp.Config == nil {
		fmt.Fprintf(w, "No tunnel settings for profile %s in %s.\n", resp.Profile, resp.ConfigPath)
		return
	}
	target := resp.Config.Target
	if target == "" {
		target = "(not set)"
	}
	fmt.Fprintf(w, "[%s]\n", resp.Profile)
	fmt.Fprintf(w, "target        = %s\n", target)
	fmt.Fprintf(w, "local_port    = %d\n", resp.Config.LocalPort)
	fmt.Fprintf(w, "remote_port   = %d\n", resp.Config.RemotePort)
	fmt.Fprintf(w, "document_name = %s\n", resp.Config.DocumentName)
}
