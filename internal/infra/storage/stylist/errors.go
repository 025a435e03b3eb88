package stylist

import "errors"

var (
	// ErrStylistNotFound is returned when the stylist does not exist
	ErrStylistNotFound = errors.New("stylist.repository: stylist not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("stylist.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("stylist.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("stylist.repository: failed to scan row")
)
