package store

import (
	"path/filepath"
	"testing"

	"github.com/ambersail/relayq/internal/command"
)

// createTestStore creates a new store backed by a temp file for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustCommand builds a canonical command payload, failing the test on error.
func mustCommand(t *testing.T, name string, args ...string) command.Command {
	t.Helper()
	cmd, err := command.New(name, args...)
	if err != nil {
		t.Fatalf("command.New(%q) failed: %v", name, err)
	}
	return cmd
}

// mustShare builds a display-URI command, failing the test on error.
func mustShare(t *testing.T, url, title string) command.Command {
	t.Helper()
	cmd, err := command.FromShareItem(url, title)
	if err != nil {
		t.Fatalf("command.FromShareItem(%q) failed: %v", url, err)
	}
	return cmd
}

// countRows returns the number of rows in the given table.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

// valuesOf extracts the payload strings from a command list.
func valuesOf(cmds []command.Command) []string {
	values := make([]string, len(cmds))
	for i, c := range cmds {
		values[i] = c.Value
	}
	return values
}

// valueSet builds a set of payload strings for order-insensitive comparison.
func valueSet(cmds []command.Command) map[string]bool {
	set := make(map[string]bool, len(cmds))
	for _, c := range cmds {
		set[c.Value] = true
	}
	return set
}
