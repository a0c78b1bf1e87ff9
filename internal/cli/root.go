// Package cli implements the relayq command line: queueing sync commands for
// remote clients, listing what is pending, and clearing mailboxes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DBPath       string // path to the queue database
	RegistryPath string // path to the YAML client registry
	CatalogPath  string // optional CUE catalog override; empty = embedded default
	Verbose      bool
	Format       string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the relayq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "relayq",
		Short: "relayq - multi-device sync command queue",
		Long:  "A durable per-client mailbox of sync commands, delivered to remote devices on their next sync.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "relayq.db", "path to the queue database")
	cmd.PersistentFlags().StringVar(&opts.RegistryPath, "clients", "clients.yaml", "path to the client registry file")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "path to a CUE command catalog (default: built-in)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewSendCommand(opts))
	cmd.AddCommand(NewShareCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewClientsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
