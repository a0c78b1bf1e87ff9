package store

import (
	"context"
	"fmt"

	"github.com/ambersail/relayq/internal/command"
)

// CommandsForClient returns the commands pending for one client, in
// association-insertion order, each carrying the owning client GUID.
//
// A GUID with no pending commands yields a bundle with an empty command list
// and no error.
func (s *Store) CommandsForClient(ctx context.Context, clientGUID string) (command.ClientCommands, error) {
	const op = "commands for client"

	rows, err := s.db.QueryContext(ctx, queuedSelect+`
		WHERE cc.client_guid = ?
		ORDER BY cc.id ASC
	`, clientGUID)
	if err != nil {
		return command.ClientCommands{}, storageErr(op, fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	cc := command.ClientCommands{
		ClientGUID: clientGUID,
		Commands:   []command.Command{},
	}
	for rows.Next() {
		cmd, err := scanQueued(rows)
		if err != nil {
			return command.ClientCommands{}, err
		}
		cc.Commands = append(cc.Commands, cmd)
	}

	if err := rows.Err(); err != nil {
		return command.ClientCommands{}, storageErr(op, fmt.Errorf("iterate: %w", err))
	}

	return cc, nil
}

// AllCommands returns one bundle per client that currently has at least one
// pending command, ordered by client GUID. Clients with nothing pending are
// absent from the result, not represented by an empty bundle.
//
// Returns an empty slice (not nil) when both tables are empty.
func (s *Store) AllCommands(ctx context.Context) ([]command.ClientCommands, error) {
	const op = "all commands"

	// Sorted by guid so grouping is a single sequential pass; within a
	// client, association-insertion order.
	rows, err := s.db.QueryContext(ctx, queuedSelect+`
		ORDER BY cc.client_guid ASC, cc.id ASC
	`)
	if err != nil {
		return nil, storageErr(op, fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	bundles := []command.ClientCommands{}
	for rows.Next() {
		cmd, err := scanQueued(rows)
		if err != nil {
			return nil, err
		}
		n := len(bundles)
		if n == 0 || bundles[n-1].ClientGUID != cmd.ClientGUID {
			bundles = append(bundles, command.ClientCommands{ClientGUID: cmd.ClientGUID})
			n++
		}
		bundles[n-1].Commands = append(bundles[n-1].Commands, cmd)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(op, fmt.Errorf("iterate: %w", err))
	}

	return bundles, nil
}

// Associations returns the raw join rows, filtered to the given client GUIDs
// or unfiltered when none are given. Low-level driver for listing client
// associations; the bundle-shaped reads above are the primary surface.
func (s *Store) Associations(ctx context.Context, clientGUIDs ...string) ([]command.Association, error) {
	const op = "associations"

	st := s.clientCommands.selectAll()
	if len(clientGUIDs) > 0 {
		st = s.clientCommands.selectForClients(clientGUIDs)
	}

	rows, err := s.db.QueryContext(ctx, st.sql, st.args...)
	if err != nil {
		return nil, storageErr(op, fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	assocs := []command.Association{}
	for rows.Next() {
		a, err := s.clientCommands.scan(rows)
		if err != nil {
			return nil, err
		}
		assocs = append(assocs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(op, fmt.Errorf("iterate: %w", err))
	}

	return assocs, nil
}

// Commands returns every row of the commands table ordered by id, without
// client attribution. Used by the wipe paths' tests and diagnostics.
func (s *Store) Commands(ctx context.Context) ([]command.Command, error) {
	const op = "commands"

	st := s.commands.selectAll()
	rows, err := s.db.QueryContext(ctx, st.sql, st.args...)
	if err != nil {
		return nil, storageErr(op, fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	cmds := []command.Command{}
	for rows.Next() {
		c, err := s.commands.scan(rows)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(op, fmt.Errorf("iterate: %w", err))
	}

	return cmds, nil
}
