package scheduling

import (
	"context"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// AppointmentRepository is the slice of the appointment store the
// scheduler needs
type AppointmentRepository interface {
	FindActiveAt(ctx context.Context, stylistID int64, at time.Time) ([]*domain.Appointment, error)
}

// StylistRepository provides the stylists eligible for auto-assignment
type StylistRepository interface {
	ListActive(ctx context.Context) ([]*domain.Stylist, error)
}

// Logger is the logging interface used by the scheduler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
