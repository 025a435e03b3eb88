package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a salon appointment (cita) in the system
type Appointment struct {
	ID        int64
	ClientID  int64
	StylistID *int64 // nullable in the schema; the creation flow always resolves one
	ServiceID int64

	// ScheduledAt is the exact slot timestamp. Conflict detection compares
	// this value for equality, not for interval overlap.
	ScheduledAt time.Time

	Status AppointmentStatus
	Notes  *string

	// TotalPrice is captured from the service at creation time and is
	// never recomputed from later price changes.
	TotalPrice int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
// (status pending or confirmed)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsAssignedTo returns true if the appointment is assigned to the given stylist
func (a *Appointment) IsAssignedTo(stylistID int64) bool {
	return a.StylistID != nil && *a.StylistID == stylistID
}

// AppointmentListFilter narrows appointment listings.
// Zero-value filter returns every appointment (admin view).
type AppointmentListFilter struct {
	ClientID  *int64 // only appointments owned by this client
	StylistID *int64 // only appointments assigned to this stylist
}

// AppointmentDetail is an appointment joined with display data for listings
type AppointmentDetail struct {
	Appointment

	ClientName  string
	ClientEmail string
	ClientPhone string
	StylistName *string
	ServiceName string
}
