package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	stylistRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/stylist"
)

// UseCase reports which times of a day a stylist is already booked.
// Clients use it to grey out taken slots before submitting a booking;
// the authoritative check still happens at creation time.
type UseCase struct {
	appointmentRepo AppointmentRepository
	stylistRepo     StylistRepository
	logger          Logger
}

// NewUseCase creates a new availability use case
func NewUseCase(appointmentRepo AppointmentRepository, stylistRepo StylistRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		stylistRepo:     stylistRepo,
		logger:          logger,
	}
}

// Execute returns the occupied HH:MM times of the stylist on the date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	day, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		uc.logger.Warn("GetAvailability: bad date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date format: %q", ErrInvalidInput, req.Date)
	}

	stylist, err := uc.stylistRepo.GetByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailability: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailability: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.Active {
		uc.logger.Warn("GetAvailability: stylist id=%d is inactive", req.StylistID)
		return nil, ErrStylistNotFound
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.ListActiveForStylistDay(ctx, req.StylistID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list appointments for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	occupied := make([]string, len(appointments))
	for i, appt := range appointments {
		occupied[i] = appt.ScheduledAt.Format(domain.TimeFormat)
	}

	uc.logger.Info("GetAvailability: stylist=%d date=%s has %d occupied slots",
		req.StylistID, req.Date, len(occupied))

	return &Response{
		StylistID:     req.StylistID,
		Date:          req.Date,
		OccupiedTimes: occupied,
	}, nil
}
