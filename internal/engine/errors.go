package engine

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds. Every error returned by Walk, Estimate, Hash and Run matches
// exactly one of these with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidPathType  = errors.New("invalid path type")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o error")
)

var (
	errSymlinkCycle = errors.New("directory cycle through symlink")
	errNotRegular   = errors.New("not a regular file or directory")
	errRecursiveOff = errors.New(`directory found but "--recursive" is not set`)
)

// PathError records a failed file-system operation and its kind.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *PathError) Unwrap() []error { return []error{e.Kind, e.Err} }

// Kind returns the taxonomy name of err: NotFound, InvalidPathType,
// PermissionDenied or IOError. Nil maps to "".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrInvalidPathType):
		return "InvalidPathType"
	case errors.Is(err, ErrPermissionDenied):
		return "PermissionDenied"
	default:
		return "IOError"
	}
}

// classify wraps a file-system error from op on path with its kind.
// Errors already classified pass through unchanged.
func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}

	kind := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	}

	// Drop the *fs.PathError layer; PathError carries op and path itself.
	var fsErr *fs.PathError
	if errors.As(err, &fsErr) {
		err = fsErr.Err
	}
	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}
