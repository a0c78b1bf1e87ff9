package store

import (
	"context"
	"fmt"

	"github.com/ambersail/relayq/internal/command"
)

// DeleteForClient removes every association row for the bundle's client GUID
// and then sweeps commands left with no association at all - across all
// clients, not just the deleted one - in the same transaction.
//
// The bundle's Commands list is advisory and not consulted: deletion is
// scoped by client, never by which specific commands were listed. Callers
// must not expect partial, per-command deletion from this call.
func (s *Store) DeleteForClient(ctx context.Context, cc command.ClientCommands) error {
	const op = "delete commands for client"

	tx, err := s.begin(ctx, op)
	if err != nil {
		return err
	}
	defer tx.Rollback() // No-op if committed

	// Associations first, then the orphan sweep. The order matters: the
	// sweep sees the post-delete join table, and foreign_keys=ON would
	// reject the reverse sequence anyway.
	st := s.clientCommands.deleteForClient(cc.ClientGUID)
	if _, err := tx.ExecContext(ctx, st.sql, st.args...); err != nil {
		return storageErr(op, fmt.Errorf("delete associations: %w", err))
	}

	st = s.commands.deleteOrphans()
	if _, err := tx.ExecContext(ctx, st.sql, st.args...); err != nil {
		return storageErr(op, fmt.Errorf("sweep orphans: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op, fmt.Errorf("commit: %w", err))
	}

	return nil
}

// DeleteAll wipes both tables: every association row, then every command
// row, atomically.
func (s *Store) DeleteAll(ctx context.Context) error {
	const op = "delete all commands"

	tx, err := s.begin(ctx, op)
	if err != nil {
		return err
	}
	defer tx.Rollback() // No-op if committed

	st := s.clientCommands.deleteAll()
	if _, err := tx.ExecContext(ctx, st.sql, st.args...); err != nil {
		return storageErr(op, fmt.Errorf("delete associations: %w", err))
	}

	st = s.commands.deleteAll()
	if _, err := tx.ExecContext(ctx, st.sql, st.args...); err != nil {
		return storageErr(op, fmt.Errorf("delete commands: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op, fmt.Errorf("commit: %w", err))
	}

	return nil
}
