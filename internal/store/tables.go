package store

import (
	"database/sql"
	"fmt"

	"github.com/ambersail/relayq/internal/command"
)

// Table adapters: each table owns its column list, its insert/delete
// statement generation, and its row scanning. The adapters only build
// statements and decode rows; the Store composes them into transactions and
// is the only thing that executes SQL.

// stmt is one SQL statement with its bound parameters.
type stmt struct {
	sql  string
	args []any
}

// commandsTable owns the commands table:
// id INTEGER PRIMARY KEY AUTOINCREMENT, value TEXT NOT NULL.
type commandsTable struct{}

// insert builds the INSERT for one payload. No duplicate check here: dedup
// is the Store's responsibility and happens before the adapter is invoked.
func (commandsTable) insert(value string) stmt {
	return stmt{
		sql:  `INSERT INTO commands (value) VALUES (?)`,
		args: []any{value},
	}
}

// deleteOne deletes a single command row by id.
func (commandsTable) deleteOne(id int64) stmt {
	return stmt{
		sql:  `DELETE FROM commands WHERE id = ?`,
		args: []any{id},
	}
}

// deleteAll empties the table. With foreign_keys=ON this fails at execution
// time while any association row still references a command, so association
// cleanup must come earlier in the statement sequence.
func (commandsTable) deleteAll() stmt {
	return stmt{sql: `DELETE FROM commands`}
}

// deleteOrphans removes every command that no association row references.
// Kept as an explicit statement rather than an FK cascade: the sweep is a
// deliberate second step after per-client association deletes.
func (commandsTable) deleteOrphans() stmt {
	return stmt{sql: `
		DELETE FROM commands
		WHERE id NOT IN (SELECT command_id FROM client_commands)
	`}
}

// selectAll returns every command row, ordered by id for determinism.
func (commandsTable) selectAll() stmt {
	return stmt{sql: `SELECT id, value FROM commands ORDER BY id ASC`}
}

// scan maps an (id, value) row to a Command. A NULL value is schema
// corruption (the column is declared NOT NULL) and fails fast.
func (commandsTable) scan(rows *sql.Rows) (command.Command, error) {
	var id int64
	var value sql.NullString
	if err := rows.Scan(&id, &value); err != nil {
		return command.Command{}, fmt.Errorf("scan command: %w", err)
	}
	if !value.Valid {
		return command.Command{}, &CorruptRowError{Table: "commands", Column: "value"}
	}
	return command.Command{ID: id, Value: value.String}, nil
}

// clientCommandsTable owns the client_commands join table:
// id INTEGER PRIMARY KEY AUTOINCREMENT, client_guid TEXT NOT NULL,
// command_id INTEGER NOT NULL REFERENCES commands(id).
type clientCommandsTable struct{}

func (clientCommandsTable) insert(clientGUID string, commandID int64) stmt {
	return stmt{
		sql:  `INSERT INTO client_commands (client_guid, command_id) VALUES (?, ?)`,
		args: []any{clientGUID, commandID},
	}
}

// deleteForClient removes every join row for the given client GUID. This is
// a per-client bulk delete; the Store pairs it with deleteOrphans in the
// same transaction.
func (clientCommandsTable) deleteForClient(clientGUID string) stmt {
	return stmt{
		sql:  `DELETE FROM client_commands WHERE client_guid = ?`,
		args: []any{clientGUID},
	}
}

// deleteAll empties the join table. Commands-table cleanup happens via the
// full-wipe path in the Store, not here.
func (clientCommandsTable) deleteAll() stmt {
	return stmt{sql: `DELETE FROM client_commands`}
}

// selectAll returns every join row, ordered by id for determinism.
func (clientCommandsTable) selectAll() stmt {
	return stmt{sql: `
		SELECT id, client_guid, command_id FROM client_commands
		ORDER BY id ASC
	`}
}

// selectForClients returns the join rows for the given client GUIDs.
func (clientCommandsTable) selectForClients(clientGUIDs []string) stmt {
	placeholders, args := inClause(clientGUIDs)
	return stmt{
		sql: `
			SELECT id, client_guid, command_id FROM client_commands
			WHERE client_guid IN (` + placeholders + `)
			ORDER BY id ASC
		`,
		args: args,
	}
}

// scan maps an (id, client_guid, command_id) row to an Association.
func (clientCommandsTable) scan(rows *sql.Rows) (command.Association, error) {
	var id, commandID int64
	var clientGUID sql.NullString
	if err := rows.Scan(&id, &clientGUID, &commandID); err != nil {
		return command.Association{}, fmt.Errorf("scan association: %w", err)
	}
	if !clientGUID.Valid {
		return command.Association{}, &CorruptRowError{Table: "client_commands", Column: "client_guid"}
	}
	return command.Association{ID: id, ClientGUID: clientGUID.String, CommandID: commandID}, nil
}

// queuedSelect is the two-table join behind the read operations: each row is
// one pending (client, command) pair.
const queuedSelect = `
	SELECT cc.client_guid, c.id, c.value
	FROM client_commands cc
	JOIN commands c ON cc.command_id = c.id
`

// scanQueued maps one join row to a Command carrying the owning client GUID.
func scanQueued(rows *sql.Rows) (command.Command, error) {
	var clientGUID, value sql.NullString
	var id int64
	if err := rows.Scan(&clientGUID, &id, &value); err != nil {
		return command.Command{}, fmt.Errorf("scan queued command: %w", err)
	}
	if !clientGUID.Valid {
		return command.Command{}, &CorruptRowError{Table: "client_commands", Column: "client_guid"}
	}
	if !value.Valid {
		return command.Command{}, &CorruptRowError{Table: "commands", Column: "value"}
	}
	return command.Command{ID: id, Value: value.String, ClientGUID: clientGUID.String}, nil
}

// inClause builds the placeholder string and bound args for an IN clause.
func inClause(values []string) (string, []any) {
	if len(values) == 0 {
		return "", nil
	}
	placeholders := make([]byte, 0, len(values)*2-1)
	args := make([]any, len(values))
	for i, v := range values {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
		args[i] = v
	}
	return string(placeholders), args
}
