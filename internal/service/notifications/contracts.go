package notifications

import (
	"context"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// AppointmentRepository is the slice of the appointment store the
// notifier needs. Both readers already exclude appointments that
// received the matching notification.
type AppointmentRepository interface {
	FindConfirmedBetween(ctx context.Context, start, end time.Time) ([]*domain.AppointmentDetail, error)
	FindPendingCreatedSince(ctx context.Context, since time.Time) ([]*domain.AppointmentDetail, error)
}

// NotificationRepository records delivered notifications
type NotificationRepository interface {
	MarkSent(ctx context.Context, n *domain.Notification) error
}

// Mailer delivers the notification mail
type Mailer interface {
	Send(to, subject, body string) error
}

// Logger is the logging interface used by the notifier
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
