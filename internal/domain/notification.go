package domain

import "time"

// NotificationType distinguishes the mails the notifier sends
type NotificationType string

const (
	NotificationReminder     NotificationType = "recordatorio"
	NotificationConfirmation NotificationType = "confirmacion"
)

// Notification records a mail sent for an appointment so the polling
// notifier never sends the same one twice
type Notification struct {
	ID            int64
	UserID        int64
	AppointmentID int64
	Type          NotificationType
	Message       string
	Sent          bool
	SentAt        time.Time
}
