package stylist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/pkg/dbmetrics"
	"github.com/parisstyle/PS-SalonService/pkg/psqlbuilder"
)

var stylistColumns = []string{"id", "nombre", "especialidades", "activo"}

// Repository persists stylists (estilistas)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new stylist repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a stylist by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("estilistas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Stylist
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Specialties,
		&s.Active,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stylist: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListActive returns active stylists ordered by ascending id.
// The auto-assigner depends on this order being stable: the same inputs
// must always try the same stylist first.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("estilistas").
		Where(squirrel.Eq{"activo": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		var s domain.Stylist
		if err := rows.Scan(&s.ID, &s.Name, &s.Specialties, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}
