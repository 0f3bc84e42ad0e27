package store

import "errors"

// Error kinds returned by Store operations.
var (
	// ErrStorageUnavailable is returned when the database cannot be opened
	// or its schema cannot be applied.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrWrite is returned when an insert or delete statement fails.
	ErrWrite = errors.New("write failed")

	// ErrRead is returned when a select statement fails.
	ErrRead = errors.New("read failed")
)
