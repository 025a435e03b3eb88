package create_appointment

import "time"

// Request asks to book an appointment. ScheduledAt carries the raw
// timestamp string as sent by the client; parsing and validation happen
// inside the use case. StylistID is optional: when nil a stylist is
// auto-assigned.
type Request struct {
	ClientID    int64
	ServiceID   int64
	StylistID   *int64
	ScheduledAt string
	Notes       *string
}

// Response is the created appointment
type Response struct {
	ID          int64
	ClientID    int64
	StylistID   int64
	StylistName string
	ServiceID   int64
	ServiceName string
	ScheduledAt time.Time
	Status      string
	Notes       *string
	TotalPrice  int64
	CreatedAt   time.Time
}
