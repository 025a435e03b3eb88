package get_availability

import "errors"

var (
	// ErrStylistNotFound is returned when the stylist does not exist or is
	// inactive
	ErrStylistNotFound = errors.New("get_availability: stylist not found")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("get_availability: internal error")
)
