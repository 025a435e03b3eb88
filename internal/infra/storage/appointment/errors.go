package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateSlot is returned when the active-slot unique index rejects
	// a second active appointment for the same stylist and timestamp
	ErrDuplicateSlot = errors.New("appointment.repository: slot already taken")

	// ErrStatusConflict is returned when a guarded status update matches no
	// row, i.e. the status changed concurrently since it was read
	ErrStatusConflict = errors.New("appointment.repository: status changed concurrently")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
