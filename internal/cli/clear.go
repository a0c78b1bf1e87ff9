package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ambersail/relayq/internal/command"
)

// NewClearCommand creates the 'clear' subcommand: drain one client's mailbox
// (sweeping commands nobody references anymore) or wipe the whole queue.
func NewClearCommand(opts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear [client]",
		Short: "Clear pending commands",
		Long: `Clear every pending command for one client (by name or GUID), or the whole
queue with --all. Clearing a client also removes commands that no other
client still references.`,
		Example: `  relayq clear phone
  relayq clear --all`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, opts)

			if all == (len(args) == 1) {
				return NewExitError(ExitCommandError, "pass exactly one of a client or --all")
			}

			s, err := openStore(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if all {
				if err := s.DeleteAll(cmd.Context()); err != nil {
					return WrapExitError(ExitFailure, "wipe queue", err)
				}
				return f.Success("Cleared all pending commands")
			}

			reg, err := LoadRegistry(opts.RegistryPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load client registry", err)
			}
			guid, err := reg.Resolve(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "resolve client", err)
			}

			if err := s.DeleteForClient(cmd.Context(), command.ClientCommands{ClientGUID: guid}); err != nil {
				return WrapExitError(ExitFailure, "clear client commands", err)
			}
			return f.Success(fmt.Sprintf("Cleared pending commands for %s", guid))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "clear the entire queue")

	return cmd
}
