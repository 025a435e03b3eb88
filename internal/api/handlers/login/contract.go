package login

import (
	"context"

	"github.com/parisstyle/PS-SalonService/internal/service/users/models"
)

type UsersService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
