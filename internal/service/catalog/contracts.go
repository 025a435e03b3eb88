package catalog

import (
	"context"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// ServiceRepository is the salon service catalog store interface
type ServiceRepository interface {
	ListActiveServices(ctx context.Context) ([]*domain.Service, error)
}

// StylistRepository is the stylist store interface
type StylistRepository interface {
	ListActive(ctx context.Context) ([]*domain.Stylist, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
