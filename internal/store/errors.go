package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAuditEntryExists is returned when an entry with the same id was
	// already appended.
	ErrAuditEntryExists = errors.New("audit entry already exists")

	// ErrAuditEntryNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrAuditEntryNotSaved = errors.New("audit entry was not saved")
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
	// (INSERT) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan audit rows")
)
