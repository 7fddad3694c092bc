package connect

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cmdConfig "github.com/tatran0195/akaw/cmd/config"
	"github.com/tatran0195/akaw/internal/app"
	generalutils "github.com/tatran0195/akaw/utils/general"
	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

type ConnectDependencies struct {
	Service        app.ServiceInterface
	Prompter       promptutils.Prompter
	GeneralManager generalutils.GeneralUtilsInterface
}

func NewConnectCmd(deps ConnectDependencies) *cobra.Command {
	var (
		flags  cmdConfig.TunnelFlags
		detach bool
	)

	connectCmd := &cobra.Command{
		Use:   "connect [profile]",
		Short: "Open an SSM port-forwarding tunnel",
		Long: `Get session credentials for the profile, reusing cached ones while they are
valid, and open an SSM port-forwarding tunnel to the target. Without a profile
argument you are asked to pick one.

The command stays in the foreground until the tunnel exits or you press
Ctrl+C. With --detach it returns right away and the tunnel keeps running
until 'akaw tunnels stop'.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var profile string
			if len(args) == 1 {
				profile = args[0]
			} else {
				names, err := deps.Service.ProfileNames()
				if err != nil {
					return fmt.Errorf("failed to list profiles: %w", err)
				}
				profile, err = deps.Prompter.SelectProfile(names)
				if errors.Is(err, promptutils.ErrInterrupted) {
					return nil
				} else if err != nil {
					return err
				}
			}

			ctx := deps.GeneralManager.HandleSignals()

			result, handle, err := deps.Service.Connect(ctx, profile, flags.Overrides())
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			deps.GeneralManager.PrintConnectSummary(out, result)

			if detach {
				fmt.Fprintf(out, "Tunnel running in the background. Stop it with 'akaw tunnels stop %s'.\n", profile)
				return nil
			}

			fmt.Fprintln(out, "Tunnel is up. Press Ctrl+C to close it.")
			done := make(chan error, 1)
			go func() { done <- handle.Wait() }()

			select {
			case err := <-done:
				if err != nil {
					return fmt.Errorf("tunnel exited: %w", err)
				}
				fmt.Fprintln(out, "Tunnel closed.")
				return nil
			case <-ctx.Done():
				fmt.Fprintln(out, "Closing tunnel...")
				if err := handle.Stop(); err != nil {
					return fmt.Errorf("failed to stop tunnel: %w", err)
				}
				<-done
				fmt.Fprintln(out, "Tunnel closed.")
				return nil
			}
		},
	}

	flags.Register(connectCmd)
	connectCmd.Flags().BoolVar(&detach, "detach", false, "Leave the tunnel running in the background")

	return connectCmd
}
