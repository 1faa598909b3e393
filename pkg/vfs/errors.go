package vfs

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError represents a failed filesystem operation. It wraps the underlying
// operating system error together with the operation and the path on which
// it failed.
type IOError struct {
	// Op is the operation that failed (e.g. "stat", "rename").
	Op string
	// Path is the path on which the operation failed.
	Path string
	// Err is the underlying operating system error.
	Err error
}

// Error implements error.Error.
func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s %s: %s", e.Op, e.Path, e.Err)
}

// Unwrap supports error chain traversal.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the specified error (at any depth of wrapping)
// indicates a non-existent filesystem node.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// ValidationError indicates invalid caller input or malformed launcher file
// content.
type ValidationError struct {
	// Message describes the validation failure.
	Message string
}

// Error implements error.Error.
func (e *ValidationError) Error() string {
	return e.Message
}

// AlreadyExistsError indicates that a rename destination already exists.
type AlreadyExistsError struct {
	// Path is the colliding destination path.
	Path string
}

// Error implements error.Error.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}
