package user

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateEmail is returned when the email is already registered
	ErrDuplicateEmail = errors.New("user.repository: email already registered")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
