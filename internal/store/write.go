package store

import (
	"context"
	"fmt"

	"github.com/ambersail/relayq/internal/command"
)

// InsertCommand queues a single command for each of the given clients.
// Equivalent to InsertCommands with a one-element batch.
func (s *Store) InsertCommand(ctx context.Context, cmd command.Command, clientGUIDs []string) (int, error) {
	return s.InsertCommands(ctx, []command.Command{cmd}, clientGUIDs)
}

// InsertCommands queues a batch of commands for each of the given clients:
//
//  1. The batch is deduplicated by value (first occurrence wins) before
//     anything touches storage.
//  2. Each unique command is inserted into the commands table, capturing its
//     assigned id.
//  3. One association row is written per (unique command, client) pair, in
//     nested order matching the input lists.
//
// Returns the number of association rows written, i.e. uniqueCount x
// clientCount. The whole operation is atomic: on any failure the transaction
// rolls back and a StorageError is returned.
//
// An empty command batch or an empty client list is a no-op returning 0;
// commands addressed to nobody are never persisted.
func (s *Store) InsertCommands(ctx context.Context, cmds []command.Command, clientGUIDs []string) (int, error) {
	const op = "insert commands"

	unique := command.Dedupe(cmds)
	if len(unique) == 0 || len(clientGUIDs) == 0 {
		return 0, nil
	}

	tx, err := s.begin(ctx, op)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // No-op if committed

	// Insert unique commands in first-seen order, capturing assigned ids.
	ids := make([]int64, len(unique))
	for i, c := range unique {
		st := s.commands.insert(c.Value)
		result, err := tx.ExecContext(ctx, st.sql, st.args...)
		if err != nil {
			return 0, storageErr(op, fmt.Errorf("insert command: %w", err))
		}
		id, err := result.LastInsertId()
		if err != nil {
			return 0, storageErr(op, fmt.Errorf("last insert id: %w", err))
		}
		ids[i] = id
	}

	// Fan out: one association row per (command, client) pair.
	written := 0
	for i := range unique {
		for _, guid := range clientGUIDs {
			st := s.clientCommands.insert(guid, ids[i])
			if _, err := tx.ExecContext(ctx, st.sql, st.args...); err != nil {
				return 0, storageErr(op, fmt.Errorf("insert association: %w", err))
			}
			written++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr(op, fmt.Errorf("commit: %w", err))
	}

	return written, nil
}
