package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells a repository how to react to a failed
// statement.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, lock
	// contention, serialization rollbacks.
	Retryable

	// Duplicate marks a unique constraint violation. An audit entry id was
	// appended twice.
	Duplicate
)

func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case Duplicate:
		return "duplicate"
	default:
		return "non_retryable"
	}
}

// pgRetryable lists the PostgreSQL codes worth another attempt (classes 08,
// 40 and 57P03). See the errcodes appendix of the PostgreSQL manual.
var pgRetryable = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier classifies errors returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to a classification.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr.Code == pgerrcode.UniqueViolation {
		return Duplicate
	}
	if _, ok := pgRetryable[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}

// SQLiteErrorClassifier classifies errors returned by go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return NonRetryable
	}

	switch {
	case liteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return Duplicate
	case liteErr.Code == sqlite3.ErrBusy, liteErr.Code == sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}
