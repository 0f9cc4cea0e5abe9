package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrDuplicateTitle is returned when creating or renaming a playlist
	// would violate the per-owner case-insensitive title uniqueness rule.
	ErrDuplicateTitle = errors.New("playlist title already exists for this owner")

	// ErrPlaylistNotFound is returned when a query targets a playlist
	// aggregate that does not exist.
	ErrPlaylistNotFound = errors.New("no playlist was found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version carried by the aggregate does not match the version stored
	// in the database, meaning a concurrent request modified the playlist
	// since it was loaded.
	ErrVersionConflict = errors.New("playlist version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan playlist row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan playlist rows")
)
