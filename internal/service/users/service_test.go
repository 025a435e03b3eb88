package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisstyle/PS-SalonService/internal/auth"
	"github.com/parisstyle/PS-SalonService/internal/domain"
	userRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/user"
	"github.com/parisstyle/PS-SalonService/internal/service/users/models"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, userRepo.ErrDuplicateEmail
	}
	u.ID = f.nextID
	f.nextID++
	u.RegisteredAt = time.Now()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(repo, testSecret, time.Hour, nopLogger{})
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "María García",
		Email:    "Maria@Example.com",
		Phone:    "+34 600 111 222",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "maria@example.com", resp.User.Email)
	assert.Equal(t, "client", resp.User.Role)

	p, err := auth.ParseToken(resp.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, p.UserID)
	assert.Equal(t, domain.RoleClient, p.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	req := &models.RegisterRequest{
		Name:     "María García",
		Email:    "maria@example.com",
		Password: "secreto123",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRightAndWrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     "María García",
		Email:    "maria@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "maria@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "maria@example.com", Password: "otra"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email reads the same as a wrong password
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     "María García",
		Email:    "maria@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	resp, err := svc.Profile(ctx, domain.Principal{UserID: reg.User.ID, Role: domain.RoleClient})
	require.NoError(t, err)
	assert.Equal(t, "María García", resp.Name)

	_, err = svc.Profile(ctx, domain.Principal{UserID: 999, Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
