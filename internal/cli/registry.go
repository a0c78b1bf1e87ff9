package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Client is one registered remote device.
type Client struct {
	GUID string `yaml:"guid" json:"guid"`
	Name string `yaml:"name" json:"name"`
}

// Registry is the YAML-backed list of known clients. It stands in for the
// external client registry that owns GUIDs; the queue itself only ever reads
// the guid field.
type Registry struct {
	Clients []Client `yaml:"clients"`
}

// LoadRegistry reads the registry file. A missing file is an empty registry,
// not an error.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Registry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read client registry: %w", err)
	}

	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse client registry: %w", err)
	}
	return &r, nil
}

// Save writes the registry back to disk.
func (r *Registry) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode client registry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write client registry: %w", err)
	}
	return nil
}

// Add registers a new client under a freshly minted GUID and returns it.
// Names must be unique so they stay usable as CLI shorthand for GUIDs.
func (r *Registry) Add(name string) (Client, error) {
	if name == "" {
		return Client{}, fmt.Errorf("client name must not be empty")
	}
	for _, c := range r.Clients {
		if c.Name == name {
			return Client{}, fmt.Errorf("client %q already registered (guid %s)", name, c.GUID)
		}
	}

	c := Client{GUID: uuid.NewString(), Name: name}
	r.Clients = append(r.Clients, c)
	return c, nil
}

// Resolve maps a name or GUID to a registered client's GUID. An unregistered
// value is returned as-is when it looks like a GUID the external registry
// could own; bare names must be registered.
func (r *Registry) Resolve(nameOrGUID string) (string, error) {
	for _, c := range r.Clients {
		if c.GUID == nameOrGUID || c.Name == nameOrGUID {
			return c.GUID, nil
		}
	}
	if _, err := uuid.Parse(nameOrGUID); err == nil {
		return nameOrGUID, nil
	}
	return "", fmt.Errorf("unknown client %q", nameOrGUID)
}

// GUIDs returns every registered client GUID, in registry order.
func (r *Registry) GUIDs() []string {
	guids := make([]string, len(r.Clients))
	for i, c := range r.Clients {
		guids[i] = c.GUID
	}
	return guids
}
