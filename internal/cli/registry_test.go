package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.yaml")

	reg := &Registry{}
	c, err := reg.Add("laptop")
	require.NoError(t, err)
	require.NoError(t, reg.Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, loaded.Clients, 1)
	assert.Equal(t, c, loaded.Clients[0])
}

func TestRegistry_MissingFileIsEmpty(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, reg.Clients)
}

func TestRegistry_AddMintsValidGUID(t *testing.T) {
	reg := &Registry{}
	c, err := reg.Add("phone")
	require.NoError(t, err)
	_, err = uuid.Parse(c.GUID)
	assert.NoError(t, err)
}

func TestRegistry_AddRejectsDuplicateName(t *testing.T) {
	reg := &Registry{}
	_, err := reg.Add("phone")
	require.NoError(t, err)
	_, err = reg.Add("phone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_AddRejectsEmptyName(t *testing.T) {
	reg := &Registry{}
	_, err := reg.Add("")
	require.Error(t, err)
}

func TestRegistry_Resolve(t *testing.T) {
	reg := &Registry{Clients: []Client{{GUID: guidLaptop, Name: "laptop"}}}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"by name", "laptop", guidLaptop, false},
		{"by guid", guidLaptop, guidLaptop, false},
		{"unregistered guid passes through", guidPhone, guidPhone, false},
		{"unknown name", "toaster", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Resolve(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterCommand_AppendsToRegistry(t *testing.T) {
	opts := testOpts(t)

	buf := &bytes.Buffer{}
	cmd := NewRegisterCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"tablet"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Registered "tablet"`)

	reg, err := LoadRegistry(opts.RegistryPath)
	require.NoError(t, err)
	require.Len(t, reg.Clients, 1)
	assert.Equal(t, "tablet", reg.Clients[0].Name)
}

func TestClientsCommand_ListsRegistry(t *testing.T) {
	opts := testOpts(t)
	writeTestRegistry(t, opts)

	buf := &bytes.Buffer{}
	cmd := NewClientsCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "laptop")
	assert.Contains(t, buf.String(), guidPhone)
}

func TestClientsCommand_EmptyRegistry(t *testing.T) {
	opts := testOpts(t)

	buf := &bytes.Buffer{}
	cmd := NewClientsCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "no clients registered")
}
