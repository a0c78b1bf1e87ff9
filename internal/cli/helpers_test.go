package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambersail/relayq/internal/command"
	"github.com/ambersail/relayq/internal/store"
)

// Fixed GUIDs keep CLI output deterministic across runs.
const (
	guidLaptop = "11111111-1111-4111-8111-111111111111"
	guidPhone  = "22222222-2222-4222-8222-222222222222"
)

// testOpts builds RootOptions pointing at a temp database and registry.
func testOpts(t *testing.T) *RootOptions {
	t.Helper()
	dir := t.TempDir()
	return &RootOptions{
		DBPath:       filepath.Join(dir, "queue.db"),
		RegistryPath: filepath.Join(dir, "clients.yaml"),
		Format:       "text",
	}
}

// writeTestRegistry seeds the registry file with the fixed test clients.
func writeTestRegistry(t *testing.T, opts *RootOptions) {
	t.Helper()
	reg := &Registry{Clients: []Client{
		{GUID: guidLaptop, Name: "laptop"},
		{GUID: guidPhone, Name: "phone"},
	}}
	require.NoError(t, reg.Save(opts.RegistryPath))
}

// seedQueue inserts commands directly through the store.
func seedQueue(t *testing.T, opts *RootOptions, cmds []command.Command, guids []string) {
	t.Helper()
	s, err := store.Open(opts.DBPath)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.InsertCommands(context.Background(), cmds, guids)
	require.NoError(t, err)
}

// queueFor reads a client's pending commands directly through the store.
func queueFor(t *testing.T, opts *RootOptions, guid string) []command.Command {
	t.Helper()
	s, err := store.Open(opts.DBPath)
	require.NoError(t, err)
	defer s.Close()
	cc, err := s.CommandsForClient(context.Background(), guid)
	require.NoError(t, err)
	return cc.Commands
}

// mustShare builds a display-URI command for seeding.
func mustShare(t *testing.T, url, title string) command.Command {
	t.Helper()
	c, err := command.FromShareItem(url, title)
	require.NoError(t, err)
	return c
}
