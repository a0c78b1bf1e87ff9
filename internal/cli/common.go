package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ambersail/relayq/internal/catalog"
	"github.com/ambersail/relayq/internal/store"
)

// newFormatter builds the formatter for a command invocation, routing
// verbose output to stderr so JSON output stays clean.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openStore opens the queue database named by the global --db flag.
func openStore(opts *RootOptions) (*store.Store, error) {
	s, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("open queue database %s", opts.DBPath), err)
	}
	return s, nil
}

// loadCatalog returns the command catalog: the --catalog file if given,
// otherwise the embedded default.
func loadCatalog(opts *RootOptions) (*catalog.Catalog, error) {
	if opts.CatalogPath != "" {
		c, err := catalog.LoadFile(opts.CatalogPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load command catalog", err)
		}
		return c, nil
	}
	c, err := catalog.Default()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load built-in command catalog", err)
	}
	return c, nil
}

// resolveTargets turns --to values (names or GUIDs) or --all into the list
// of recipient client GUIDs.
func resolveTargets(opts *RootOptions, to []string, all bool) ([]string, error) {
	reg, err := LoadRegistry(opts.RegistryPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load client registry", err)
	}

	if all {
		if len(to) > 0 {
			return nil, NewExitError(ExitCommandError, "--to and --all are mutually exclusive")
		}
		guids := reg.GUIDs()
		if len(guids) == 0 {
			return nil, NewExitError(ExitCommandError, "no clients registered; run 'relayq register' first")
		}
		return guids, nil
	}

	if len(to) == 0 {
		return nil, NewExitError(ExitCommandError, "no targets: pass --to or --all")
	}

	guids := make([]string, len(to))
	for i, target := range to {
		guid, err := reg.Resolve(target)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "resolve target", err)
		}
		guids[i] = guid
	}
	return guids, nil
}
