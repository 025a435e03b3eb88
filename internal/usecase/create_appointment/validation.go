package create_appointment

import (
	"fmt"
	"strings"
	"time"
)

// Accepted timestamp layouts, tried in order. Clients send either the
// ISO form with a "T" separator or the space-separated form; seconds and
// fractional seconds are optional.
var scheduledAtLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// validateRequest checks the structural fields of the request
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StylistID != nil && *req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ScheduledAt) == "" {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	return nil
}

// parseScheduledAt parses the raw timestamp into local time. A trailing
// "Z" or "+00:00" marker is dropped rather than converted: the salon
// operates in a single local timezone and stores naive timestamps.
func parseScheduledAt(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "Z")
	s = strings.TrimSuffix(s, "+00:00")

	for _, layout := range scheduledAtLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid scheduledAt format: %q", ErrInvalidInput, raw)
}

// validateFuture rejects timestamps that are not strictly in the future
func validateFuture(at, now time.Time) error {
	if !at.After(now) {
		return fmt.Errorf("%w: scheduledAt must be in the future", ErrInvalidInput)
	}
	return nil
}
