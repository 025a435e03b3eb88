package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	appointmentRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/catalog"
	stylistRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/stylist"
	"github.com/parisstyle/PS-SalonService/internal/service/scheduling"
)

// UseCase books an appointment: resolves the service, picks or verifies
// the stylist, and inserts the pending appointment
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	stylistRepo     StylistRepository
	scheduler       Scheduler
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new create-appointment use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	stylistRepo StylistRepository,
	scheduler Scheduler,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		stylistRepo:     stylistRepo,
		scheduler:       scheduler,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the appointment. The conflict check and the insert run in
// one serializable transaction; concurrent bookings of the same slot are
// also stopped by the partial unique index on (estilista_id, fecha_hora),
// so the slot can never be double-booked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, service=%d, scheduledAt=%q",
		req.ClientID, req.ServiceID, req.ScheduledAt)

	// 1. Structural validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Parse the timestamp and reject past slots
	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		uc.logger.Warn("CreateAppointment: bad timestamp %q: %v", req.ScheduledAt, err)
		return nil, err
	}
	if err := validateFuture(scheduledAt, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: timestamp %s not in the future", scheduledAt.Format(time.RFC3339))
		return nil, err
	}

	// 3. Resolve the booked service
	service, err := uc.serviceRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Appointment
	var assigned *domain.Stylist

	// 4. Conflict check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Pick the stylist: verify the requested one, or auto-assign
		if req.StylistID != nil {
			stylist, err := uc.resolveRequestedStylist(txCtx, *req.StylistID, scheduledAt)
			if err != nil {
				return err
			}
			assigned = stylist
		} else {
			stylist, err := uc.scheduler.AssignStylist(txCtx, req.ServiceID, scheduledAt)
			if err != nil {
				if errors.Is(err, scheduling.ErrNoStylistAvailable) {
					uc.logger.Warn("CreateAppointment: no stylist free at %s", scheduledAt.Format(time.RFC3339))
					return ErrNoStylistAvailable
				}
				uc.logger.Error("CreateAppointment: auto-assignment failed: %v", err)
				return fmt.Errorf("%w: auto-assignment failed: %v", ErrInternal, err)
			}
			assigned = stylist
		}

		// 4.2. Insert as pending with the service price snapshotted
		appt := &domain.Appointment{
			ClientID:    req.ClientID,
			StylistID:   &assigned.ID,
			ServiceID:   service.ID,
			ScheduledAt: scheduledAt,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
			TotalPrice:  service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				// a concurrent booking won the slot between check and insert
				uc.logger.Warn("CreateAppointment: slot stylist=%d at=%s taken concurrently",
					assigned.ID, scheduledAt.Format(time.RFC3339))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d stylist=%d at=%s",
		result.ID, assigned.ID, scheduledAt.Format(time.RFC3339))

	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		StylistID:   assigned.ID,
		StylistName: assigned.Name,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		ScheduledAt: result.ScheduledAt,
		Status:      string(result.Status),
		Notes:       result.Notes,
		TotalPrice:  result.TotalPrice,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// resolveRequestedStylist verifies that the explicitly requested stylist
// exists, is active, and is free at the timestamp
func (uc *UseCase) resolveRequestedStylist(ctx context.Context, stylistID int64, at time.Time) (*domain.Stylist, error) {
	stylist, err := uc.stylistRepo.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			uc.logger.Warn("CreateAppointment: stylist id=%d not found", stylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get stylist id=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.Active {
		uc.logger.Warn("CreateAppointment: stylist id=%d is inactive", stylistID)
		return nil, ErrStylistNotFound
	}

	conflict, err := uc.scheduler.HasConflict(ctx, stylistID, at)
	if err != nil {
		uc.logger.Error("CreateAppointment: conflict check failed for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}
	if conflict {
		uc.logger.Warn("CreateAppointment: stylist=%d already booked at %s", stylistID, at.Format(time.RFC3339))
		return nil, ErrSlotTaken
	}

	return stylist, nil
}
