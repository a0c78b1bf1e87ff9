package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ambersail/relayq/internal/command"
)

// NewShareCommand creates the 'share' subcommand: queue a display-URI
// command so target clients open the given page on their next sync.
func NewShareCommand(opts *RootOptions) *cobra.Command {
	var to []string
	var all bool

	cmd := &cobra.Command{
		Use:   "share <url> [title]",
		Short: "Send a page to other clients",
		Long: `Queue a display-URI command so the target clients open the given page on
their next sync. The title is optional and defaults to empty.`,
		Example: `  relayq share https://example.com/article "Worth a read" --to phone
  relayq share https://example.com --all`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, opts)

			url := args[0]
			title := ""
			if len(args) == 2 {
				title = args[1]
			}

			targets, err := resolveTargets(opts, to, all)
			if err != nil {
				return err
			}

			c, err := command.FromShareItem(url, title)
			if err != nil {
				return WrapExitError(ExitCommandError, "encode share command", err)
			}

			s, err := openStore(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			written, err := s.InsertCommand(cmd.Context(), c, targets)
			if err != nil {
				return WrapExitError(ExitFailure, "queue share command", err)
			}

			f.VerboseLog("payload: %s", c.Value)
			if opts.Format == "json" {
				return f.Success(sendResult{Command: command.DisplayURI, Clients: targets, Associations: written})
			}
			return f.Success(fmt.Sprintf("Shared %s with %d client(s)", url, written))
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "target client name or GUID (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "target every registered client")

	return cmd
}
