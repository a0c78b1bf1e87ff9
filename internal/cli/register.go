package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCommand creates the 'register' subcommand: mint a GUID for a
// new client and record it in the registry.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "register <name>",
		Short:         "Register a client and mint its GUID",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, opts)

			reg, err := LoadRegistry(opts.RegistryPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load client registry", err)
			}

			c, err := reg.Add(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "register client", err)
			}
			if err := reg.Save(opts.RegistryPath); err != nil {
				return WrapExitError(ExitFailure, "save client registry", err)
			}

			if opts.Format == "json" {
				return f.Success(c)
			}
			return f.Success(fmt.Sprintf("Registered %q as %s", c.Name, c.GUID))
		},
	}

	return cmd
}

// NewClientsCommand creates the 'clients' subcommand: list the registry.
func NewClientsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clients",
		Short:         "List registered clients",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd, opts)

			reg, err := LoadRegistry(opts.RegistryPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load client registry", err)
			}

			if opts.Format == "json" {
				return f.Success(reg.Clients)
			}
			if len(reg.Clients) == 0 {
				return f.Success("no clients registered")
			}
			for _, c := range reg.Clients {
				fmt.Fprintf(f.Writer, "%s  %s\n", c.GUID, c.Name)
			}
			return nil
		},
	}

	return cmd
}
