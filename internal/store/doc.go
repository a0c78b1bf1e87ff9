// Package store provides SQLite-backed durable storage for the sync command
// queue: a per-client mailbox of opaque command payloads that one device
// enqueues for delivery to others on their next sync.
//
// Two tables back the queue:
//   - commands: the deduplicated payloads (identity = the value string)
//   - client_commands: join rows linking a client GUID to a pending command
//
// # Invariants
//
//   - Dedup: within one insert batch, commands with byte-identical values
//     collapse to a single commands row (first occurrence wins).
//   - Fan-out: inserting u unique commands for c clients writes exactly
//     u x c association rows.
//   - Orphan GC: a command whose last association row is removed is swept in
//     the same delete transaction; there is no deferred cleanup pass.
//   - Atomicity: every operation runs inside a single transaction and either
//     fully applies or fully rolls back.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// The connection pool is limited to a single connection, so concurrent
// callers are serialized at the pool; no operation's statements can
// interleave with another's.
package store
