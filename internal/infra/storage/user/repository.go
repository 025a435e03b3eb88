package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/pkg/dbmetrics"
	"github.com/parisstyle/PS-SalonService/pkg/psqlbuilder"
)

// pq unique_violation; raised by the unique index on usuarios.email
const pqUniqueViolation = "23505"

var userColumns = []string{
	"id",
	"nombre",
	"email",
	"telefono",
	"password_hash",
	"es_admin",
	"es_estilista",
	"estilista_id",
	"fecha_registro",
}

// Repository persists user accounts (usuarios)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new user repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user account
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("usuarios").
		Columns("nombre", "email", "telefono", "password_hash", "es_admin", "es_estilista", "estilista_id").
		Values(u.Name, u.Email, u.Phone, u.PasswordHash, u.IsAdmin, u.IsStylist, u.StylistID).
		Suffix("RETURNING id, fecha_registro").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.RegisteredAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// GetByEmail fetches a user by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getWhere(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

// GetByID fetches a user by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id}, "GetByID")
}

func (r *Repository) getWhere(ctx context.Context, pred squirrel.Eq, method string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("usuarios").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.IsStylist,
		&u.StylistID,
		&u.RegisteredAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
