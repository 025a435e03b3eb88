package notification

import (
	"context"
	"fmt"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/pkg/dbmetrics"
	"github.com/parisstyle/PS-SalonService/pkg/psqlbuilder"
)

// Repository records sent notifications (notificaciones)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new notification repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// MarkSent records that a notification has been delivered for an appointment.
// The appointment readers exclude rows with a matching sent notification,
// which is what keeps the polling notifier idempotent.
func (r *Repository) MarkSent(ctx context.Context, n *domain.Notification) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notificaciones").
		Columns("usuario_id", "cita_id", "tipo", "mensaje", "enviado", "fecha_envio").
		Values(n.UserID, n.AppointmentID, string(n.Type), n.Message, true, n.SentAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkSent - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkSent - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
