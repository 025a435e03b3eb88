package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/auth"
	"github.com/parisstyle/PS-SalonService/internal/domain"
	userRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/user"
	"github.com/parisstyle/PS-SalonService/internal/service/users/models"
)

// Service manages account registration, login and profiles
type Service struct {
	userRepo  UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    Logger
}

// NewService creates a new users service
func NewService(userRepo UserRepository, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a new client account and issues a token for it
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Register: creating account for email=%s", email)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: hashing password for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hash,
	}

	user, err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user=%d email=%s", user.ID, email)
	return s.issueToken(user)
}

// Login authenticates an account and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user=%d authenticated", user.ID)
	return s.issueToken(user)
}

// Profile returns the account of the authenticated principal
func (s *Service) Profile(ctx context.Context, p domain.Principal) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Profile: repository error for user=%d: %v", p.UserID, err)
		return nil, fmt.Errorf("%w: Profile - repository error: %v", ErrInternal, err)
	}

	resp := models.FromUser(user)
	return &resp, nil
}

func (s *Service) issueToken(user *domain.User) (*models.TokenResponse, error) {
	token, err := auth.MakeToken(user.Principal(), s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error("issueToken: signing token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issueToken - sign token: %v", ErrInternal, err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        models.FromUser(user),
	}, nil
}
