package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when an update or delete targets a note id
	// that does not exist for the given owner. The record store never
	// upserts: updating a missing note is an error, not a create.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteNotSaved is returned when an INSERT completes without a driver
	// error but affects zero rows, meaning nothing was actually persisted.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrMarkerNotSaved is the marker-collection analogue of ErrNoteNotSaved.
	ErrMarkerNotSaved = errors.New("marker was not saved")

	// ErrObjectAlreadyExists is returned by the blob storage when a write
	// targets a name that is already taken. Objects are write-once; callers
	// generate a fresh name per upload and never overwrite.
	ErrObjectAlreadyExists = errors.New("object already exists")

	// ErrObjectNotFound is returned by the blob storage when the requested
	// object name has never been written.
	ErrObjectNotFound = errors.New("object was not found")

	// ErrNoCachedSnapshot is returned by the client cache when no note
	// snapshot has been stored yet.
	ErrNoCachedSnapshot = errors.New("no cached snapshot")

	// ErrNoDraftFound is returned by the client cache when no draft exists
	// for the requested note.
	ErrNoDraftFound = errors.New("no draft found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
