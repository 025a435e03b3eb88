package list_appointments

import (
	"context"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, p domain.Principal) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
