package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrPersistence is returned when the credential file cannot be written.
	// The previous file content, if any, is left untouched.
	ErrPersistence = errors.New("credential persistence failed")

	// ErrDeviceNotFound is returned when a lookup, update or delete targets
	// an id that does not exist in the devices table.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrSaleNotFound is returned when no local sale record has the id.
	ErrSaleNotFound = errors.New("sale was not found")

	// ErrDeviceAlreadyExists is returned when creating a device whose id is
	// already taken.
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrUnsupportedDSN is returned when the configured DSN cannot be mapped
	// to a known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so both can be matched.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
