package create_appointment

import "errors"

var (
	// ErrServiceNotFound is returned when the booked service does not exist
	// or is inactive
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStylistNotFound is returned when the requested stylist does not
	// exist or is inactive
	ErrStylistNotFound = errors.New("create_appointment: stylist not found")

	// ErrSlotTaken is returned when the requested stylist already has an
	// active appointment at the exact timestamp
	ErrSlotTaken = errors.New("create_appointment: stylist already booked at this time")

	// ErrNoStylistAvailable is returned when auto-assignment finds every
	// active stylist occupied at the timestamp
	ErrNoStylistAvailable = errors.New("create_appointment: no stylist available at this time")

	// ErrInvalidInput is returned on malformed or out-of-range input
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_appointment: internal error")
)
