// Package catalog defines the set of sync commands a client may be asked to
// process. The catalog is declared in CUE so the command list is validated
// structurally (names, argument counts) before anything touches storage.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed catalog.cue
var defaultCatalogCUE string

// Entry describes one known command: its wire name and the exact number of
// positional arguments it takes.
type Entry struct {
	Name        string `json:"name"`
	Args        int    `json:"args"`
	Description string `json:"description,omitempty"`
}

// Catalog is the validated set of known commands, keyed by wire name.
type Catalog struct {
	entries map[string]Entry
}

// Load compiles and validates a CUE catalog document.
func Load(src string) (*Catalog, error) {
	ctx := cuecontext.New()
	val := ctx.CompileString(src, cue.Filename("catalog.cue"))
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("compile catalog: %w", err)
	}

	cmds := val.LookupPath(cue.ParsePath("commands"))
	if err := cmds.Err(); err != nil {
		return nil, fmt.Errorf("catalog has no commands field: %w", err)
	}
	if err := cmds.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var decoded map[string]Entry
	if err := cmds.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("catalog declares no commands")
	}

	entries := make(map[string]Entry, len(decoded))
	for name, e := range decoded {
		e.Name = name
		entries[name] = e
	}
	return &Catalog{entries: entries}, nil
}

// LoadFile loads a catalog from a CUE file on disk.
func LoadFile(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Load(string(src))
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Load(defaultCatalogCUE)
}

// Lookup returns the entry for a command name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Validate checks that name is a known command taking exactly argc args.
func (c *Catalog) Validate(name string, argc int) error {
	e, ok := c.entries[name]
	if !ok {
		return fmt.Errorf("unknown command %q (known: %v)", name, c.Names())
	}
	if argc != e.Args {
		return fmt.Errorf("command %q takes %d arg(s), got %d", name, e.Args, argc)
	}
	return nil
}

// Names returns the known command names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
