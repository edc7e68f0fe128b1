package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassifier.Classify].
// It tells repository code whether a failed database operation is worth
// retrying on a later pass, is permanently broken, or failed because the
// storage medium itself is exhausted.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// Default for unrecognised errors, constraint violations, syntax errors
	// and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (transient connection loss, lock contention, deadlock rollback).
	Retryable

	// StorageExhausted indicates that the storage medium is out of space.
	// On the client this maps to [ErrStorageFull] at enqueue time.
	StorageExhausted
)

// ErrorClassifier classifies driver-level errors for a particular backend.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL by
// inspecting the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. If err is nil or is not a PostgreSQL
// driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	return NonRetryable
}

// classifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08 — connection exceptions
//   - Class 40 — transaction rollback, serialization failure, deadlock
//   - Class 57 — cannot connect now
//
// Class 53 (insufficient resources, disk full) maps to [StorageExhausted].
// Everything else is [NonRetryable].
func classifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable

	// Class 53 — insufficient resources
	case pgerrcode.DiskFull,
		pgerrcode.OutOfMemory:
		return StorageExhausted
	}

	return NonRetryable
}

// isPgUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. Used by the audit repository to recognise an idempotent replay
// of an already delivered capture.
func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// SQLiteErrorClassifier implements [ErrorClassifier] for the on-device SQLite
// queue. SQLITE_FULL and disk I/O exhaustion map to [StorageExhausted]; lock
// contention is [Retryable].
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrFull:
		return StorageExhausted
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
