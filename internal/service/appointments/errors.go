package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned when the requested status is not a known one
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrAccessDenied is returned when the principal may not perform the
	// requested transition on this appointment
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition is returned when the current status does not
	// permit the requested transition
	ErrInvalidTransition = errors.New("transition not allowed from current status")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("appointments service: internal error")
)
