package scheduling

import "errors"

var (
	// ErrNoStylistAvailable is returned when every active stylist already
	// has an active appointment at the requested timestamp
	ErrNoStylistAvailable = errors.New("scheduling: no stylist available at this time")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("scheduling: internal error")
)
