package store

import (
	"errors"
	"fmt"
)

// StorageError wraps any failure raised by the underlying connection or
// transaction: SQL errors, constraint violations, I/O failures. Every store
// operation surfaces its storage-layer failures as a StorageError; a
// well-formed query returning zero rows is a success, not an error.
//
// The store never retries. Retry policy, if any, belongs to the caller.
type StorageError struct {
	// Op names the store operation that failed, e.g. "insert commands".
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr wraps err as a StorageError for the named operation.
func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError returns true if the error is (or wraps) a StorageError.
// Uses errors.As to handle wrapped errors.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// CorruptRowError reports a row whose schema-guaranteed NOT NULL column came
// back NULL. This indicates schema corruption, not a recoverable condition:
// callers should abort loudly rather than handle it defensively.
type CorruptRowError struct {
	Table  string
	Column string
}

func (e *CorruptRowError) Error() string {
	return fmt.Sprintf("corrupt row in %s: column %s is NULL but declared NOT NULL", e.Table, e.Column)
}

// IsCorruptRow returns true if the error indicates schema corruption.
// Uses errors.As to handle wrapped errors.
func IsCorruptRow(err error) bool {
	var ce *CorruptRowError
	return errors.As(err, &ce)
}
