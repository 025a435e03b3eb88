package appointments

import (
	"context"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// AppointmentRepository is the appointment store interface
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListDetails(ctx context.Context, filter domain.AppointmentListFilter) ([]*domain.AppointmentDetail, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
