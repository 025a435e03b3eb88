package create_appointment

import (
	"context"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// AppointmentRepository is the appointment store interface
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ServiceRepository resolves the booked service
type ServiceRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// StylistRepository resolves an explicitly requested stylist
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// Scheduler checks slot conflicts and auto-assigns stylists
type Scheduler interface {
	HasConflict(ctx context.Context, stylistID int64, at time.Time) (bool, error)
	AssignStylist(ctx context.Context, serviceID int64, at time.Time) (*domain.Stylist, error)
}

// TransactionManager runs the conflict check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
