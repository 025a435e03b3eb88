package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// Service implements slot conflict checking and automatic stylist
// assignment. A slot is the (stylist, exact timestamp) pair: conflicts are
// detected by timestamp equality only, never by service-duration overlap,
// so two appointments one minute apart are not considered conflicting even
// when their durations overlap in real time.
type Service struct {
	appointmentRepo AppointmentRepository
	stylistRepo     StylistRepository
	logger          Logger
}

// NewService creates a new scheduling service
func NewService(appointmentRepo AppointmentRepository, stylistRepo StylistRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		stylistRepo:     stylistRepo,
		logger:          logger,
	}
}

// HasConflict reports whether the stylist already has an active appointment
// (pending or confirmed) at exactly the given timestamp. Completed and
// cancelled appointments do not occupy the slot.
func (s *Service) HasConflict(ctx context.Context, stylistID int64, at time.Time) (bool, error) {
	active, err := s.appointmentRepo.FindActiveAt(ctx, stylistID, at)
	if err != nil {
		s.logger.Error("HasConflict: repository error for stylist=%d at=%s: %v", stylistID, at, err)
		return false, fmt.Errorf("%w: HasConflict - repository error: %v", ErrInternal, err)
	}
	return len(active) > 0, nil
}

// AssignStylist picks a stylist for the requested service and timestamp.
// Active stylists are tried in ascending id order, which makes the choice
// deterministic: identical inputs always land on the same stylist. The
// first stylist without a conflict wins. serviceID does not filter by
// specialty; every active stylist is eligible regardless of service type.
func (s *Service) AssignStylist(ctx context.Context, serviceID int64, at time.Time) (*domain.Stylist, error) {
	stylists, err := s.stylistRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("AssignStylist: failed to list stylists for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: AssignStylist - list stylists: %v", ErrInternal, err)
	}

	for _, stylist := range stylists {
		conflict, err := s.HasConflict(ctx, stylist.ID, at)
		if err != nil {
			return nil, err
		}
		if !conflict {
			s.logger.Info("AssignStylist: assigned stylist=%d for service=%d at=%s",
				stylist.ID, serviceID, at.Format(time.RFC3339))
			return stylist, nil
		}
	}

	s.logger.Warn("AssignStylist: no stylist available for service=%d at=%s", serviceID, at.Format(time.RFC3339))
	return nil, ErrNoStylistAvailable
}
