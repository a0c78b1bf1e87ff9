// Package command defines the value types of the sync command queue and the
// canonical payload encoding that gives commands their identity.
//
// A Command is an opaque serialized action ("display this URI", "wipe all
// data") addressed to one or more remote clients. Its identity for storage
// purposes is its Value string, not its row id: two commands are equal, and
// de-duplicatable within an insert batch, iff their Value strings are
// byte-identical. All payloads must therefore be built through New (or
// FromShareItem), which produces a canonical encoding so that identical
// logical commands always serialize to identical bytes.
package command
