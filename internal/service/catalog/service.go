package catalog

import (
	"context"
	"fmt"

	"github.com/parisstyle/PS-SalonService/internal/service/catalog/models"
)

// Service exposes the public salon catalog: bookable services and the
// active stylist roster
type Service struct {
	serviceRepo ServiceRepository
	stylistRepo StylistRepository
	logger      Logger
}

// NewService creates a new catalog service
func NewService(serviceRepo ServiceRepository, stylistRepo StylistRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		stylistRepo: stylistRepo,
		logger:      logger,
	}
}

// ListServices returns the active service catalog
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.ListActiveServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromServiceList(services), nil
}

// ListStylists returns the active stylist roster
func (s *Service) ListStylists(ctx context.Context) (*models.StylistListResponse, error) {
	stylists, err := s.stylistRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListStylists: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStylists - repository error: %v", ErrInternal, err)
	}
	return models.FromStylistList(stylists), nil
}
