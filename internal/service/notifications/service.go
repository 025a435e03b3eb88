package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// Service sends appointment mail: next-day reminders for confirmed
// appointments and confirmation requests for freshly created pending
// ones. Every delivery is recorded in notificaciones, and the
// appointment readers skip already-notified rows, so a pass can run
// any number of times without duplicate mail.
type Service struct {
	appointmentRepo  AppointmentRepository
	notificationRepo NotificationRepository
	mailer           Mailer
	logger           Logger
}

// NewService creates a new notifications service
func NewService(
	appointmentRepo AppointmentRepository,
	notificationRepo NotificationRepository,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

// SendReminders mails every client with a confirmed appointment
// tomorrow (relative to now) that has not been reminded yet.
// Returns the number of reminders sent.
func (s *Service) SendReminders(ctx context.Context, now time.Time) (int, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	appointments, err := s.appointmentRepo.FindConfirmedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("SendReminders: failed to list appointments: %v", err)
		return 0, fmt.Errorf("%w: SendReminders - repository error: %v", ErrInternal, err)
	}

	sent := 0
	for _, appt := range appointments {
		subject := "Recordatorio de tu cita en Paris Style"
		body := reminderBody(appt)

		if err := s.deliver(ctx, appt, domain.NotificationReminder, subject, body, now); err != nil {
			// keep going; the next pass retries this one
			s.logger.Warn("SendReminders: appointment=%d skipped: %v", appt.ID, err)
			continue
		}
		sent++
	}

	s.logger.Info("SendReminders: sent %d of %d reminders", sent, len(appointments))
	return sent, nil
}

// SendConfirmations mails every client whose pending appointment was
// created after since and has no confirmation mail yet.
// Returns the number of mails sent.
func (s *Service) SendConfirmations(ctx context.Context, since, now time.Time) (int, error) {
	appointments, err := s.appointmentRepo.FindPendingCreatedSince(ctx, since)
	if err != nil {
		s.logger.Error("SendConfirmations: failed to list appointments: %v", err)
		return 0, fmt.Errorf("%w: SendConfirmations - repository error: %v", ErrInternal, err)
	}

	sent := 0
	for _, appt := range appointments {
		subject := "Hemos recibido tu reserva en Paris Style"
		body := confirmationBody(appt)

		if err := s.deliver(ctx, appt, domain.NotificationConfirmation, subject, body, now); err != nil {
			s.logger.Warn("SendConfirmations: appointment=%d skipped: %v", appt.ID, err)
			continue
		}
		sent++
	}

	s.logger.Info("SendConfirmations: sent %d of %d confirmation mails", sent, len(appointments))
	return sent, nil
}

// deliver sends the mail and records it. The record is written only
// after a successful send: a crash between the two steps causes one
// duplicate mail at worst, never a silently dropped one.
func (s *Service) deliver(
	ctx context.Context,
	appt *domain.AppointmentDetail,
	tipo domain.NotificationType,
	subject, body string,
	now time.Time,
) error {
	if err := s.mailer.Send(appt.ClientEmail, subject, body); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	err := s.notificationRepo.MarkSent(ctx, &domain.Notification{
		UserID:        appt.ClientID,
		AppointmentID: appt.ID,
		Type:          tipo,
		Message:       subject,
		Sent:          true,
		SentAt:        now,
	})
	if err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	return nil
}

func reminderBody(appt *domain.AppointmentDetail) string {
	stylist := "nuestro equipo"
	if appt.StylistName != nil {
		stylist = *appt.StylistName
	}
	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"Te recordamos tu cita de mañana en Paris Style:\n\n"+
			"  Servicio: %s\n"+
			"  Fecha y hora: %s\n"+
			"  Estilista: %s\n\n"+
			"Si no puedes asistir, cancela tu cita desde la aplicación.\n\n"+
			"¡Te esperamos!\nParis Style",
		appt.ClientName,
		appt.ServiceName,
		appt.ScheduledAt.Format("02/01/2006 15:04"),
		stylist,
	)
}

func confirmationBody(appt *domain.AppointmentDetail) string {
	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"Hemos recibido tu reserva en Paris Style:\n\n"+
			"  Servicio: %s\n"+
			"  Fecha y hora: %s\n\n"+
			"Tu cita está pendiente de confirmación. Te avisaremos en cuanto\n"+
			"tu estilista la confirme.\n\n"+
			"Gracias por tu confianza,\nParis Style",
		appt.ClientName,
		appt.ServiceName,
		appt.ScheduledAt.Format("02/01/2006 15:04"),
	)
}
