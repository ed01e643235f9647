package store

import "errors"

// Sentinel errors returned by key-value backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoSuchKey is returned by Get when the key has never been set or
	// has been deleted.
	ErrNoSuchKey = errors.New("no such key")

	// ErrInvalidKey is returned when a key cannot be mapped onto the
	// backend (for example, it contains a path separator).
	ErrInvalidKey = errors.New("invalid key")

	// ErrUnknownBackend is returned by [NewKeyValueStore] for a backend name
	// it does not know.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These wrap the driver error returned
// by the sqlite backend.
var (
	ErrExecutingQuery   = errors.New("error executing query")
	ErrBuildingSQLQuery = errors.New("error building SQL query")
)
