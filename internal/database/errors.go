package database

import (
	"errors"
	"fmt"
)

// SchemaError reports a structural mismatch between the declared table
// descriptors and the live database, found during startup validation.
type SchemaError struct {
	Table    string
	Column   string
	Property string
	Detail   string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Table == "":
		return fmt.Sprintf("schema mismatch: %s", e.Detail)
	case e.Column == "":
		return fmt.Sprintf("schema mismatch in table %q: %s", e.Table, e.Detail)
	default:
		return fmt.Sprintf("schema mismatch in table %q, column %q: %s mismatch (%s)",
			e.Table, e.Column, e.Property, e.Detail)
	}
}

// ModelNotFoundError means an operation referenced a table with no registered
// descriptor.
type ModelNotFoundError struct {
	Table string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model not found for table: %s", e.Table)
}

// NotFoundError means an update or delete predicate matched no rows.
type NotFoundError struct {
	Table string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry with given parameters not found in table: %s", e.Table)
}

// ValidationError means the caller supplied a missing or malformed payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DatabaseError wraps any unexpected storage-engine failure so callers never
// see driver-specific error shapes. Op identifies the failing operation.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error in %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// isKnown reports whether err already carries one of the typed shapes that
// must propagate to callers unmodified.
func isKnown(err error) bool {
	var (
		modelErr      *ModelNotFoundError
		notFoundErr   *NotFoundError
		validationErr *ValidationError
		dbErr         *DatabaseError
	)
	return errors.As(err, &modelErr) ||
		errors.As(err, &notFoundErr) ||
		errors.As(err, &validationErr) ||
		errors.As(err, &dbErr)
}
