package tree

import "errors"

var (
	// ErrDirNotFound is returned when the root cannot be canonicalized or inspected.
	ErrDirNotFound = errors.New("directory not found")
	// ErrExpectedParent is returned when a non-root entry has no resolvable parent directory.
	ErrExpectedParent = errors.New("expected a parent directory for entry")
	// ErrMissingRoot is returned when the walk completes without reporting the root.
	ErrMissingRoot = errors.New("traversal finished without reporting the root directory")
	// ErrNoMatches is returned when nothing besides the root survives traversal and filtering.
	ErrNoMatches = errors.New("no files or directories matched the provided criteria")
)
