package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	appointmentRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/appointment"
	"github.com/parisstyle/PS-SalonService/internal/service/appointments/models"
)

// Service manages appointment listings and the status lifecycle
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates a new appointments service
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List returns the appointments visible to the principal:
// admins see everything, stylists their assigned appointments, clients
// their own. Each row carries the actions the principal may perform on it.
func (s *Service) List(ctx context.Context, p domain.Principal) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d role=%s", p.UserID, p.Role)

	var filter domain.AppointmentListFilter
	switch p.Role {
	case domain.RoleAdmin:
		// unfiltered
	case domain.RoleStylist:
		// a stylist account without a linked estilista row owns no
		// appointments; an empty filter would mean the admin view
		if p.StylistID == nil {
			s.logger.Warn("List: stylist user=%d has no stylist id, returning empty list", p.UserID)
			return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
		}
		filter.StylistID = p.StylistID
	default:
		clientID := p.UserID
		filter.ClientID = &clientID
	}

	details, err := s.appointmentRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", p.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for user=%d", len(details), p.UserID)
	return models.FromDetailList(details, p), nil
}

// UpdateStatus moves an appointment into a new status after validating the
// transition against the lifecycle table. On any failure the record is left
// unchanged; on success fecha_actualizacion is refreshed by the store.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	s.logger.Info("UpdateStatus: appointment=%d target=%s user=%d role=%s",
		appointmentID, req.Status, req.Principal.UserID, req.Principal.Role)

	target, ok := models.ToDomainStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status=%q for appointment=%d", req.Status, appointmentID)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := domain.CheckTransition(appt, target, req.Principal); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownStatus):
			s.logger.Warn("UpdateStatus: unknown target status=%s for appointment=%d", target, appointmentID)
			return nil, ErrInvalidStatus
		case errors.Is(err, domain.ErrTransitionForbidden):
			s.logger.Warn("UpdateStatus: user=%d may not move appointment=%d to %s",
				req.Principal.UserID, appointmentID, target)
			return nil, ErrAccessDenied
		default:
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment=%d",
				appt.Status, target, appointmentID)
			return nil, ErrInvalidTransition
		}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, appt.Status, target); err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusConflict) {
			// a concurrent transition won; the requested one no longer applies
			s.logger.Warn("UpdateStatus: appointment=%d changed concurrently, %s -> %s rejected",
				appointmentID, appt.Status, target)
			return nil, ErrInvalidTransition
		}
		s.logger.Error("UpdateStatus: failed to update appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment=%d moved %s -> %s", appointmentID, appt.Status, target)
	return &models.StatusResponse{ID: appointmentID, Status: string(target)}, nil
}
