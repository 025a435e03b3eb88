package notification

import "errors"

var (
	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("notification.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("notification.repository: failed to execute query")
)
