package list_stylists

import (
	"context"

	"github.com/parisstyle/PS-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	ListStylists(ctx context.Context) (*models.StylistListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
