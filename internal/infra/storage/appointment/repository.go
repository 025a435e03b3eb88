package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/pkg/dbmetrics"
	"github.com/parisstyle/PS-SalonService/pkg/psqlbuilder"
)

// pq unique_violation; raised by the partial active-slot index
const pqUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"cliente_id",
	"estilista_id",
	"servicio_id",
	"fecha_hora",
	"estado",
	"notas",
	"precio_total",
	"fecha_creacion",
	"fecha_actualizacion",
}

// Repository persists appointments (citas)
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new appointment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment.
// When the context carries an active transaction it is used; this is how the
// creation use case keeps the conflict check and the insert atomic. The
// partial unique index on (estilista_id, fecha_hora) for active statuses is
// the storage-level backstop: a concurrent insert for the same slot fails
// with ErrDuplicateSlot instead of double-booking.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("citas").
		Columns(
			"cliente_id",
			"estilista_id",
			"servicio_id",
			"fecha_hora",
			"estado",
			"notas",
			"precio_total",
		).
		Values(
			appt.ClientID,
			appt.StylistID,
			appt.ServiceID,
			appt.ScheduledAt,
			appt.Status,
			appt.Notes,
			appt.TotalPrice,
		).
		Suffix("RETURNING id, fecha_creacion, fecha_actualizacion").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches an appointment by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("citas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// FindActiveAt returns the active (pending or confirmed) appointments of a
// stylist at the exact timestamp. Matching is by timestamp equality, not by
// interval overlap. Inside a transaction the rows are locked FOR UPDATE so
// the subsequent insert stays serialized with concurrent creations.
func (r *Repository) FindActiveAt(ctx context.Context, stylistID int64, at time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("citas").
		Where(squirrel.Eq{
			"estilista_id": stylistID,
			"fecha_hora":   at,
			"estado":       statusStrings(domain.ActiveStatuses),
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveAt - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListActiveForStylistDay returns the active appointments of a stylist
// within [dayStart, dayEnd), ordered by time. Used for availability listings.
func (r *Repository) ListActiveForStylistDay(ctx context.Context, stylistID int64, dayStart, dayEnd time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("citas").
		Where(squirrel.Eq{
			"estilista_id": stylistID,
			"estado":       statusStrings(domain.ActiveStatuses),
		}).
		Where(squirrel.GtOrEq{"fecha_hora": dayStart}).
		Where(squirrel.Lt{"fecha_hora": dayEnd}).
		OrderBy("fecha_hora ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForStylistDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForStylistDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListDetails returns appointments joined with client, stylist and service
// display data, newest first. The filter scopes the listing to a client or
// a stylist; the zero-value filter returns everything (admin view).
func (r *Repository) ListDetails(ctx context.Context, filter domain.AppointmentListFilter) ([]*domain.AppointmentDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailSelect()

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"c.cliente_id": *filter.ClientID})
	}
	if filter.StylistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"c.estilista_id": *filter.StylistID})
	}

	query, args, err := selectBuilder.OrderBy("c.fecha_hora DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// FindConfirmedBetween returns confirmed appointments scheduled within
// [start, end] that have not received a reminder notification yet.
// Consumed by the notifier's next-day reminder pass.
func (r *Repository) FindConfirmedBetween(ctx context.Context, start, end time.Time) ([]*domain.AppointmentDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailSelect().
		Where(squirrel.Eq{"c.estado": string(domain.StatusConfirmed)}).
		Where(squirrel.GtOrEq{"c.fecha_hora": start}).
		Where(squirrel.LtOrEq{"c.fecha_hora": end}).
		Where(notNotified(domain.NotificationReminder)).
		OrderBy("c.fecha_hora ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindConfirmedBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindConfirmedBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// FindPendingCreatedSince returns pending appointments created after since
// that have not received a confirmation mail yet
func (r *Repository) FindPendingCreatedSince(ctx context.Context, since time.Time) ([]*domain.AppointmentDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailSelect().
		Where(squirrel.Eq{"c.estado": string(domain.StatusPending)}).
		Where(squirrel.GtOrEq{"c.fecha_creacion": since}).
		Where(notNotified(domain.NotificationConfirmation)).
		OrderBy("c.fecha_creacion ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingCreatedSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingCreatedSince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// UpdateStatus moves an appointment from one status to another and
// refreshes fecha_actualizacion. The update is guarded by the expected
// current status, so a concurrent transition that won the race leaves
// this one failing with ErrStatusConflict instead of overwriting it.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("citas").
		Set("estado", to).
		Set("fecha_actualizacion", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "estado": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	// zero rows means the row is gone or its status moved on since the read
	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// detailSelect builds the joined listing query shared by the detail readers
func detailSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"c.id",
		"c.cliente_id",
		"c.estilista_id",
		"c.servicio_id",
		"c.fecha_hora",
		"c.estado",
		"c.notas",
		"c.precio_total",
		"c.fecha_creacion",
		"c.fecha_actualizacion",
		"u.nombre",
		"u.email",
		"u.telefono",
		"e.nombre",
		"s.nombre",
	).
		From("citas c").
		Join("usuarios u ON u.id = c.cliente_id").
		Join("servicios s ON s.id = c.servicio_id").
		LeftJoin("estilistas e ON e.id = c.estilista_id")
}

// notNotified filters out appointments that already received a sent
// notification of the given type
func notNotified(tipo domain.NotificationType) squirrel.Sqlizer {
	return squirrel.Expr(
		"NOT EXISTS (SELECT 1 FROM notificaciones n WHERE n.cita_id = c.id AND n.tipo = ? AND n.enviado = TRUE)",
		string(tipo),
	)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.StylistID,
		&appt.ServiceID,
		&appt.ScheduledAt,
		&appt.Status,
		&appt.Notes,
		&appt.TotalPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time
	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func scanDetails(rows *sql.Rows) ([]*domain.AppointmentDetail, error) {
	details := make([]*domain.AppointmentDetail, 0)

	for rows.Next() {
		var d domain.AppointmentDetail
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.ClientID,
			&d.StylistID,
			&d.ServiceID,
			&d.ScheduledAt,
			&d.Status,
			&d.Notes,
			&d.TotalPrice,
			&createdAt,
			&updatedAt,
			&d.ClientName,
			&d.ClientEmail,
			&d.ClientPhone,
			&d.StylistName,
			&d.ServiceName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
