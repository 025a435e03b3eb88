package get_profile

import (
	"context"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/internal/service/users/models"
)

type UsersService interface {
	Profile(ctx context.Context, p domain.Principal) (*models.UserResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
