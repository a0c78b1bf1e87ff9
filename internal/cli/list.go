package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ambersail/relayq/internal/command"
)

// NewListCommand creates the 'list' subcommand: show pending commands for
// one client or for every client with a non-empty mailbox.
func NewListCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [client]",
		Short: "List pending commands",
		Long: `List the commands pending for one client (by name or GUID), or for every
client that has at least one pending command when no client is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, opts)

			s, err := openStore(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			var bundles []command.ClientCommands
			if len(args) == 1 {
				reg, err := LoadRegistry(opts.RegistryPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "load client registry", err)
				}
				guid, err := reg.Resolve(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "resolve client", err)
				}
				cc, err := s.CommandsForClient(cmd.Context(), guid)
				if err != nil {
					return WrapExitError(ExitFailure, "read commands", err)
				}
				// An empty mailbox is a valid answer, shown as such.
				bundles = []command.ClientCommands{cc}
			} else {
				bundles, err = s.AllCommands(cmd.Context())
				if err != nil {
					return WrapExitError(ExitFailure, "read commands", err)
				}
			}

			if opts.Format == "json" {
				return f.Success(bundles)
			}
			renderBundles(f.Writer, bundles)
			return nil
		},
	}

	return cmd
}

// renderBundles writes the text view of pending commands.
func renderBundles(w io.Writer, bundles []command.ClientCommands) {
	pending := 0
	for _, b := range bundles {
		pending += len(b.Commands)
	}
	if pending == 0 {
		fmt.Fprintln(w, "no pending commands")
		return
	}

	for _, b := range bundles {
		fmt.Fprintf(w, "client %s (%d pending)\n", b.ClientGUID, len(b.Commands))
		for _, c := range b.Commands {
			fmt.Fprintf(w, "  [%d] %s\n", c.ID, c.Value)
		}
	}
}
