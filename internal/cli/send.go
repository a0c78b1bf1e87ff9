package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ambersail/relayq/internal/command"
)

// sendResult is the JSON payload for a successful enqueue.
type sendResult struct {
	Command      string   `json:"command"`
	Clients      []string `json:"clients"`
	Associations int      `json:"associations"`
}

// NewSendCommand creates the 'send' subcommand: queue a sync command for one
// or more clients.
func NewSendCommand(opts *RootOptions) *cobra.Command {
	var to []string
	var all bool

	cmd := &cobra.Command{
		Use:   "send <command> [args...]",
		Short: "Queue a sync command for one or more clients",
		Long: `Queue a sync command for delivery to remote clients on their next sync.

The command name and argument count are validated against the command
catalog before anything is written.`,
		Example: `  relayq send wipeEngine bookmarks --to laptop
  relayq send logout --all`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, opts)

			cat, err := loadCatalog(opts)
			if err != nil {
				return err
			}
			name, cmdArgs := args[0], args[1:]
			if err := cat.Validate(name, len(cmdArgs)); err != nil {
				return WrapExitError(ExitCommandError, "rejected by catalog", err)
			}

			targets, err := resolveTargets(opts, to, all)
			if err != nil {
				return err
			}

			c, err := command.New(name, cmdArgs...)
			if err != nil {
				return WrapExitError(ExitCommandError, "encode command", err)
			}

			s, err := openStore(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			written, err := s.InsertCommand(cmd.Context(), c, targets)
			if err != nil {
				return WrapExitError(ExitFailure, "queue command", err)
			}

			f.VerboseLog("payload: %s", c.Value)
			if opts.Format == "json" {
				return f.Success(sendResult{Command: name, Clients: targets, Associations: written})
			}
			return f.Success(fmt.Sprintf("Queued %q for %d client(s)", name, written))
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "target client name or GUID (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "target every registered client")

	return cmd
}
