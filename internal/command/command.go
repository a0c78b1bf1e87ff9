package command

// Command is an opaque serialized action queued for delivery to a remote
// client on its next sync.
type Command struct {
	// ID is the storage-assigned row id. Zero until the command has been
	// persisted.
	ID int64

	// Value is the canonical JSON payload. Equality is byte-identity of
	// Value; the assigned ID plays no part in it.
	Value string

	// ClientGUID identifies the client the command is addressed to. It is
	// set only on commands materialized from a join query and is not part
	// of the command's own identity.
	ClientGUID string
}

// Association is a row linking a recipient client to one persisted command,
// representing "this command is pending for this client". The store does not
// enforce uniqueness of (ClientGUID, CommandID) pairs: queueing the same
// command twice for the same client yields two association rows pointing at
// the same deduplicated command.
type Association struct {
	ID         int64
	ClientGUID string
	CommandID  int64
}

// ClientCommands bundles a client GUID with the commands currently pending
// for it. It is a query-result shape only and is never persisted as such.
type ClientCommands struct {
	ClientGUID string    `json:"client_guid"`
	Commands   []Command `json:"commands"`
}

// Dedupe removes commands whose Value has already been seen, preserving
// first-seen order. The input slice is not modified.
func Dedupe(cmds []Command) []Command {
	seen := make(map[string]struct{}, len(cmds))
	out := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if _, ok := seen[c.Value]; ok {
			continue
		}
		seen[c.Value] = struct{}{}
		out = append(out, c)
	}
	return out
}
