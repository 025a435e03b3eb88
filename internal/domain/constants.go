package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// ActiveStatuses are the statuses that occupy a slot.
// Used when checking conflicts and listing availability.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses are the statuses with no outgoing transitions
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}

// ValidStatuses lists every status an appointment may hold
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus reports whether s names a known appointment status
func IsValidStatus(s AppointmentStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
