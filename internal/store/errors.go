package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageFull is returned by the local queue when the on-device
	// database cannot grow any further. The capture is rejected and must be
	// surfaced to the user immediately.
	ErrStorageFull = errors.New("local storage is full")

	// ErrRecordNotFound is returned when a queue lookup by local_id matches
	// no row.
	ErrRecordNotFound = errors.New("queue record was not found")

	// ErrDuplicateLocalID is returned when an audit-entry INSERT violates the
	// (agent_id, local_id) uniqueness constraint: the capture has already
	// been delivered in an earlier attempt.
	ErrDuplicateLocalID = errors.New("audit entry with this local id already exists")

	// ErrEntryNotFound is returned when a query or update targets an audit
	// entry that does not exist or belongs to another agent.
	ErrEntryNotFound = errors.New("audit entry was not found")

	// ErrLoginAlreadyExists is returned when agent registration fails because
	// the login is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoAgentWasFound is returned when a query expected to match at least
	// one agent record produces an empty result set.
	ErrNoAgentWasFound = errors.New("no agent was found")
)

// Low-level database operation errors, returned (or wrapped) by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
