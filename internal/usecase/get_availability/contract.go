package get_availability

import (
	"context"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// AppointmentRepository is the slice of the appointment store the
// availability reader needs
type AppointmentRepository interface {
	ListActiveForStylistDay(ctx context.Context, stylistID int64, dayStart, dayEnd time.Time) ([]*domain.Appointment, error)
}

// StylistRepository resolves the queried stylist
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
